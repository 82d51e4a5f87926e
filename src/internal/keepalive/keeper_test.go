// FILE: srunauth/src/internal/keepalive/keeper_test.go
package keepalive

import (
	"context"
	"sync"
	"testing"
	"time"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"
	"srunauth/src/internal/portal"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

// fakeSession goes offline on demand and comes back online after a successful login
type fakeSession struct {
	mu        sync.Mutex
	online    bool
	statusErr error
	loginErr  error
	reject    bool
	statuses  int
	logins    int
}

func (f *fakeSession) Status(ctx context.Context) (*portal.OnlineInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &portal.OnlineInfo{Online: f.online, Message: "not_online_error"}, nil
}

func (f *fakeSession) Login(ctx context.Context) (*portal.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.reject {
		return &portal.Result{State: portal.StateFailure, Message: "E2553: Password is error."}, nil
	}
	f.online = true
	return &portal.Result{State: portal.StateSuccess, Message: "login_ok"}, nil
}

func (f *fakeSession) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses, f.logins
}

func TestKeeper_Check(t *testing.T) {
	t.Run("Online", func(t *testing.T) {
		s := &fakeSession{online: true}
		k := New(s, Options{Interval: time.Second}, newTestLogger())

		online, err := k.Check(context.Background())
		require.NoError(t, err)
		assert.True(t, online)
		_, logins := s.counts()
		assert.Equal(t, 0, logins)
	})

	t.Run("OfflineLogsIn", func(t *testing.T) {
		s := &fakeSession{}
		k := New(s, Options{Interval: time.Second}, newTestLogger())

		online, err := k.Check(context.Background())
		require.NoError(t, err)
		assert.True(t, online)
		_, logins := s.counts()
		assert.Equal(t, 1, logins)
	})

	t.Run("ReloginRateLimited", func(t *testing.T) {
		s := &fakeSession{reject: true}
		k := New(s, Options{Interval: time.Second, MinRelogin: time.Hour}, newTestLogger())

		for i := 0; i < 3; i++ {
			online, err := k.Check(context.Background())
			require.NoError(t, err)
			assert.False(t, online)
		}

		_, logins := s.counts()
		assert.Equal(t, 1, logins, "burst of one login per MinRelogin")
		stats := k.GetStats()
		assert.Equal(t, uint64(2), stats["skipped_logins"])
		assert.Equal(t, uint64(1), stats["failed_logins"])
	})

	t.Run("StatusError", func(t *testing.T) {
		s := &fakeSession{statusErr: core.ErrNetwork}
		k := New(s, Options{Interval: time.Second}, newTestLogger())

		_, err := k.Check(context.Background())
		assert.ErrorIs(t, err, core.ErrNetwork)
		_, logins := s.counts()
		assert.Equal(t, 0, logins)
	})
}

func TestKeeper_Run(t *testing.T) {
	t.Run("PollsUntilCancelled", func(t *testing.T) {
		s := &fakeSession{online: true}
		k := New(s, Options{Interval: 10 * time.Millisecond}, newTestLogger())

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := k.Run(ctx)
		assert.NoError(t, err)
		statuses, _ := s.counts()
		assert.GreaterOrEqual(t, statuses, 3)
	})

	t.Run("NetworkErrorsDoNotStop", func(t *testing.T) {
		s := &fakeSession{statusErr: core.ErrNetwork}
		k := New(s, Options{Interval: 10 * time.Millisecond}, newTestLogger())

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
		defer cancel()

		assert.NoError(t, k.Run(ctx))
		statuses, _ := s.counts()
		assert.Greater(t, statuses, 1)
	})

	t.Run("ConfigurationErrorStops", func(t *testing.T) {
		s := &fakeSession{loginErr: core.ErrConfiguration}
		k := New(s, Options{Interval: 10 * time.Millisecond}, newTestLogger())

		err := k.Run(context.Background())
		assert.ErrorIs(t, err, core.ErrConfiguration)
		_, logins := s.counts()
		assert.Equal(t, 1, logins)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.HoldConfig{IntervalSeconds: 60, MinReloginSeconds: 30})
	assert.Equal(t, time.Minute, opts.Interval)
	assert.Equal(t, 30*time.Second, opts.MinRelogin)

	k := New(&fakeSession{}, Options{}, newTestLogger())
	assert.Equal(t, "1m0s", k.GetStats()["interval"])
}
