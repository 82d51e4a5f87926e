// FILE: srunauth/src/cmd/srunauth/commands/signal.go
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/log"
)

// SignalHandler cancels a context on SIGINT or SIGTERM
type SignalHandler struct {
	logger  *log.Logger
	sigChan chan os.Signal
	done    chan struct{}
}

// NewSignalHandler registers for termination signals
func NewSignalHandler(logger *log.Logger) *SignalHandler {
	sh := &SignalHandler{
		logger:  logger,
		sigChan: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(sh.sigChan, syscall.SIGINT, syscall.SIGTERM)
	return sh
}

// Context returns a child of parent cancelled when a termination signal arrives
func (sh *SignalHandler) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case sig := <-sh.sigChan:
			sh.logger.Info("msg", "Shutdown signal received", "signal", sig.String())
			cancel()
		case <-sh.done:
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// Stop unregisters the handler
func (sh *SignalHandler) Stop() {
	signal.Stop(sh.sigChan)
	close(sh.done)
}
