// FILE: srunauth/src/internal/portal/authenticator.go
package portal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"srunauth/src/internal/alphabet"
	"srunauth/src/internal/checksum"
	"srunauth/src/internal/config"
	"srunauth/src/internal/core"
	"srunauth/src/internal/jsonp"
	"srunauth/src/internal/netif"
	"srunauth/src/internal/transport"
	"srunauth/src/internal/useragent"

	"github.com/lixenwraith/log"
)

// IPResolver maps an adapter name to its IPv4 address
type IPResolver interface {
	Lookup(name string) (string, error)
}

// Authenticator runs challenge/login exchanges against one gateway.
// It holds no per-attempt state and may be shared between goroutines.
type Authenticator struct {
	cfg      *config.Config
	doer     transport.Doer
	logger   *log.Logger
	encoding *alphabet.Encoding
	keyRole  checksum.KeyRole
	resolver IPResolver
	device   string
	platform string
	now      func() time.Time
	observe  func(State)
}

// Option customizes an Authenticator
type Option func(*Authenticator)

// WithResolver replaces the network interface resolver
func WithResolver(r IPResolver) Option {
	return func(a *Authenticator) {
		a.resolver = r
	}
}

// WithClock replaces the time source used for request timestamps
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

// WithStateObserver registers a callback invoked on every login state transition
func WithStateObserver(fn func(State)) Option {
	return func(a *Authenticator) {
		a.observe = fn
	}
}

// Result is the terminal outcome of a login or logout
type Result struct {
	State State

	// Server message, verbatim
	Message string

	Username string
	IP       string
}

// Success reports whether the gateway accepted the request
func (r *Result) Success() bool {
	return r.State == StateSuccess
}

// New creates an Authenticator from a validated configuration
func New(cfg *config.Config, doer transport.Doer, logger *log.Logger, opts ...Option) (*Authenticator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", core.ErrConfiguration)
	}
	if doer == nil {
		return nil, fmt.Errorf("%w: http client is nil", core.ErrConfiguration)
	}

	enc, err := alphabet.NewEncoding(cfg.Constant.Alpha, cfg.PadRune())
	if err != nil {
		return nil, fmt.Errorf("failed to create payload encoding: %w", err)
	}

	keyRole, err := checksum.ParseKeyRole(cfg.Constant.HMACKey)
	if err != nil {
		return nil, err
	}

	device, platform := useragent.Parse(cfg.Device.UserAgent)

	a := &Authenticator{
		cfg:      cfg,
		doer:     doer,
		logger:   logger,
		encoding: enc,
		keyRole:  keyRole,
		resolver: netif.NewResolver(),
		device:   device,
		platform: platform,
		now:      time.Now,
		observe:  func(State) {},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Challenge requests a fresh token for username and ip
func (a *Authenticator) Challenge(ctx context.Context, username, ip string) (string, error) {
	params := url.Values{}
	params.Set("callback", core.Callback)
	params.Set("username", username)
	params.Set("ip", ip)
	params.Set("_", a.timestamp())

	resp, err := a.doer.Get(ctx, a.cfg.API.Challenge, params)
	if err != nil {
		return "", fmt.Errorf("challenge request failed: %w", err)
	}

	var body struct {
		Challenge string `json:"challenge"`
		ClientIP  string `json:"client_ip"`
		Error     string `json:"error"`
	}
	if err := jsonp.Decode(resp.Body, core.Callback, &body); err != nil {
		return "", fmt.Errorf("challenge response: %w", err)
	}
	if body.Challenge == "" {
		return "", fmt.Errorf("%w: challenge missing from response (error: %q)", core.ErrProtocol, body.Error)
	}

	a.logger.Debug("msg", "Challenge received",
		"component", "portal",
		"token_length", len(body.Challenge),
		"client_ip", body.ClientIP)
	return body.Challenge, nil
}

// Login runs one attempt: resolve ip, fetch a challenge, submit the login.
// A gateway rejection is a StateFailure result with a nil error.
func (a *Authenticator) Login(ctx context.Context) (*Result, error) {
	if err := a.cfg.RequireCredentials(); err != nil {
		return nil, err
	}

	a.observe(StateIdle)

	ip, err := a.ResolveIP(ctx)
	if err != nil {
		return nil, err
	}
	username := a.cfg.FullUsername()

	a.observe(StateChallengeRequested)
	token, err := a.Challenge(ctx, username, ip)
	if err != nil {
		return nil, err
	}
	a.observe(StateChallengeReceived)

	req, err := BuildLogin(LoginInput{
		Credentials: Credentials{Username: username, Password: a.cfg.User.Password},
		Token:       token,
		IP:          ip,
		ACID:        a.cfg.Constant.ACID,
		N:           a.cfg.Constant.N,
		Type:        a.cfg.Constant.Type,
		EncVersion:  a.cfg.Constant.Enc,
		Device:      a.device,
		Platform:    a.platform,
		Encoding:    a.encoding,
		KeyRole:     a.keyRole,
	})
	if err != nil {
		return nil, err
	}

	return a.Submit(ctx, req)
}

// Submit sends a built login request and interprets the gateway answer
func (a *Authenticator) Submit(ctx context.Context, req *AuthRequest) (*Result, error) {
	params := req.Values()
	params.Set("_", a.timestamp())

	a.observe(StateLoginSubmitted)
	resp, err := a.doer.Get(ctx, a.cfg.API.Authenticate, params)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	var body loginResponse
	if err := jsonp.Decode(resp.Body, core.Callback, &body); err != nil {
		return nil, fmt.Errorf("login response: %w", err)
	}

	result := &Result{
		State:    StateFailure,
		Message:  body.message(),
		Username: req.Get("username"),
		IP:       req.Get("ip"),
	}
	if body.ClientIP != "" {
		result.IP = body.ClientIP
	}
	if body.Error == "ok" {
		result.State = StateSuccess
	}
	a.observe(result.State)

	a.logger.Info("msg", "Login finished",
		"component", "portal",
		"state", result.State.String(),
		"username", result.Username,
		"ip", result.IP,
		"message", result.Message)
	return result, nil
}

type loginResponse struct {
	Error    string `json:"error"`
	SucMsg   string `json:"suc_msg"`
	ErrorMsg string `json:"error_msg"`
	Res      string `json:"res"`
	ClientIP string `json:"client_ip"`
}

// message picks the field a user should see: suc_msg on success, error_msg otherwise
func (r *loginResponse) message() string {
	if r.Error == "ok" && r.SucMsg != "" {
		return r.SucMsg
	}
	if r.ErrorMsg != "" {
		return r.ErrorMsg
	}
	if r.Res != "" {
		return r.Res
	}
	return r.Error
}

func (a *Authenticator) timestamp() string {
	return strconv.FormatInt(a.now().UnixMilli(), 10)
}
