// FILE: srunauth/src/cmd/srunauth/commands/runtime.go
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"
	"srunauth/src/internal/format"
	"srunauth/src/internal/portal"
	"srunauth/src/internal/transport"
	"srunauth/src/internal/version"

	"github.com/lixenwraith/log"
	"golang.org/x/term"
)

// runtime wires configuration, logging and the portal client for one command run
type runtime struct {
	cfg     *config.Config
	logger  *log.Logger
	auth    *portal.Authenticator
	signals *SignalHandler
	format  format.Formatter
}

// newRuntime loads configuration and builds the portal client. When needPassword
// is set and none is configured, the password is read from the terminal.
func newRuntime(flags *commonFlags, needPassword bool, errOut io.Writer) (*runtime, error) {
	cfg, err := config.Load(flags.loadOptions())
	if err != nil {
		return nil, err
	}

	if needPassword && cfg.User.Password == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := promptPassword(errOut, fmt.Sprintf("Password for %s: ", cfg.FullUsername()))
		if err != nil {
			return nil, err
		}
		cfg = cfg.WithPassword(password)
	}

	logger, err := initializeLogger(cfg.Logging, flags.isQuiet(), *flags.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := transport.NewClient(cfg.HTTP, cfg.Device.UserAgent, logger)
	if err != nil {
		shutdownLogger(logger)
		return nil, err
	}

	auth, err := portal.New(cfg, client, logger)
	if err != nil {
		shutdownLogger(logger)
		return nil, err
	}

	formatter, err := format.New(*flags.format, logger)
	if err != nil {
		shutdownLogger(logger)
		return nil, fmt.Errorf("%w: %v", core.ErrConfiguration, err)
	}

	logger.Debug("msg", "srunauth starting",
		"client", version.UserAgentToken(),
		"build", version.String(),
		"username", cfg.FullUsername(),
		"ip_source", cfg.Device.IPSource,
		"transport", client.GetStats())

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		auth:    auth,
		signals: NewSignalHandler(logger),
		format:  formatter,
	}, nil
}

// context returns a context cancelled on SIGINT or SIGTERM
func (r *runtime) context() (context.Context, context.CancelFunc) {
	return r.signals.Context(context.Background())
}

func (r *runtime) close() {
	r.signals.Stop()
	shutdownLogger(r.logger)
}

// print renders a report to w with the selected formatter
func (r *runtime) print(w io.Writer, report format.Report) {
	if report.Time.IsZero() {
		report.Time = time.Now()
	}
	out, err := r.format.Format(report)
	if err != nil {
		r.logger.Warn("msg", "Failed to format report",
			"component", "output",
			"format", r.format.Name(),
			"error", err)
		return
	}
	_, _ = w.Write(out)
}

// resultReport converts an authenticator result into a console report
func resultReport(command string, result *portal.Result) format.Report {
	return format.Report{
		Command:  command,
		Online:   command == "login" && result.Success(),
		State:    result.State.String(),
		Username: result.Username,
		IP:       result.IP,
		Message:  result.Message,
	}
}

func shutdownLogger(logger *log.Logger) {
	if logger != nil {
		// Best effort, the logger cannot report its own shutdown error
		_ = logger.Shutdown(2 * time.Second)
	}
}

func promptPassword(errOut io.Writer, prompt string) (string, error) {
	fmt.Fprint(errOut, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(errOut)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
