// FILE: srunauth/src/internal/keepalive/keeper.go
package keepalive

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"
	"srunauth/src/internal/portal"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

// Session is the part of the portal client a Keeper drives
type Session interface {
	Status(ctx context.Context) (*portal.OnlineInfo, error)
	Login(ctx context.Context) (*portal.Result, error)
}

// Options controls the polling cadence
type Options struct {
	// Time between status checks
	Interval time.Duration

	// Minimum spacing of login attempts; zero disables the limit
	MinRelogin time.Duration
}

// OptionsFromConfig converts the hold config section
func OptionsFromConfig(cfg config.HoldConfig) Options {
	return Options{
		Interval:   time.Duration(cfg.IntervalSeconds) * time.Second,
		MinRelogin: time.Duration(cfg.MinReloginSeconds) * time.Second,
	}
}

// Keeper polls the online status and logs in again when the session drops.
// Attempts are strictly sequential.
type Keeper struct {
	session  Session
	interval time.Duration
	limiter  *rate.Limiter
	logger   *log.Logger

	checks        atomic.Uint64
	logins        atomic.Uint64
	failedLogins  atomic.Uint64
	skippedLogins atomic.Uint64
	errors        atomic.Uint64
}

// New creates a Keeper
func New(session Session, opts Options, logger *log.Logger) *Keeper {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	limit := rate.Inf
	if opts.MinRelogin > 0 {
		limit = rate.Every(opts.MinRelogin)
	}

	return &Keeper{
		session:  session,
		interval: interval,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
	}
}

// Run checks immediately and then on every interval until ctx is cancelled.
// Network and protocol failures are logged and retried on the next tick;
// configuration errors stop the loop.
func (k *Keeper) Run(ctx context.Context) error {
	k.logger.Info("msg", "Hold mode started",
		"component", "keepalive",
		"interval", k.interval.String())

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		if _, err := k.Check(ctx); err != nil {
			if errors.Is(err, core.ErrConfiguration) {
				return err
			}
			if ctx.Err() == nil {
				k.logger.Warn("msg", "Hold check failed", "component", "keepalive", "error", err)
			}
		}

		select {
		case <-ctx.Done():
			k.logger.Info("msg", "Hold mode stopped", "component", "keepalive", "checks", k.checks.Load())
			return nil
		case <-ticker.C:
		}
	}
}

// Check performs one status query and, when offline, at most one login.
// It reports whether the client is online afterwards.
func (k *Keeper) Check(ctx context.Context) (bool, error) {
	k.checks.Add(1)

	info, err := k.session.Status(ctx)
	if err != nil {
		k.errors.Add(1)
		return false, err
	}
	if info.Online {
		k.logger.Debug("msg", "Session alive", "component", "keepalive", "username", info.Username, "ip", info.IP)
		return true, nil
	}

	if !k.limiter.Allow() {
		k.skippedLogins.Add(1)
		k.logger.Debug("msg", "Offline, login deferred by rate limit", "component", "keepalive")
		return false, nil
	}

	k.logger.Info("msg", "Session dropped, logging in", "component", "keepalive", "message", info.Message)
	k.logins.Add(1)
	result, err := k.session.Login(ctx)
	if err != nil {
		k.errors.Add(1)
		k.failedLogins.Add(1)
		return false, err
	}
	if !result.Success() {
		k.failedLogins.Add(1)
		k.logger.Warn("msg", "Gateway rejected login", "component", "keepalive", "message", result.Message)
		return false, nil
	}
	return true, nil
}

// GetStats returns counters since the Keeper was created
func (k *Keeper) GetStats() map[string]any {
	return map[string]any{
		"interval":       k.interval.String(),
		"checks":         k.checks.Load(),
		"logins":         k.logins.Load(),
		"failed_logins":  k.failedLogins.Load(),
		"skipped_logins": k.skippedLogins.Load(),
		"errors":         k.errors.Load(),
	}
}
