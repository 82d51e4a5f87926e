// FILE: srunauth/src/cmd/srunauth/commands/router_test.go
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"srunauth/src/internal/config"
	"srunauth/src/internal/portal"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*CommandRouter, *bytes.Buffer) {
	router := NewCommandRouter()
	buf := &bytes.Buffer{}
	router.output = buf
	return router, buf
}

func TestRouter_Help(t *testing.T) {
	t.Run("General", func(t *testing.T) {
		router, buf := newTestRouter()
		require.NoError(t, router.Route([]string{"srunauth", "help"}))

		out := buf.String()
		for _, name := range []string{"login", "status", "logout", "hold", "init", "version"} {
			assert.Contains(t, out, "  "+name)
		}
	})

	t.Run("CommandFlag", func(t *testing.T) {
		router, buf := newTestRouter()
		require.NoError(t, router.Route([]string{"srunauth", "hold", "--help"}))
		assert.Contains(t, buf.String(), "Hold Command")
	})

	t.Run("HelpTopic", func(t *testing.T) {
		router, buf := newTestRouter()
		require.NoError(t, router.Route([]string{"srunauth", "help", "status"}))
		assert.Contains(t, buf.String(), "Status Command")
	})

	t.Run("UnknownTopic", func(t *testing.T) {
		router, _ := newTestRouter()
		assert.Error(t, router.Route([]string{"srunauth", "help", "nope"}))
	})
}

func TestRouter_UnknownCommand(t *testing.T) {
	router, _ := newTestRouter()
	err := router.Route([]string{"srunauth", "lgoin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: lgoin")
}

func TestRouter_InitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "srunauth.toml")
	cmd := NewInitCommand()
	out := &bytes.Buffer{}
	cmd.output = out
	cmd.errOut = &bytes.Buffer{}

	require.NoError(t, cmd.Execute([]string{"-o", path, "-u", "20231234", "--domain", "@cmcc"}))
	assert.Contains(t, out.String(), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "20231234")
	assert.Contains(t, string(content), config.Defaults().API.Challenge)

	err = cmd.Execute([]string{"-o", path})
	assert.ErrorContains(t, err, "already exists")

	assert.NoError(t, cmd.Execute([]string{"-o", path, "-f"}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", coalesceString("", "b", "c"))
	assert.Equal(t, "", coalesceString("", ""))
	assert.Equal(t, 5, coalesceInt(0, 5, 0))
	assert.Equal(t, 3, coalesceInt(3, 5, 0))
	assert.True(t, coalesceBool(false, true))
	assert.False(t, coalesceBool(false, false))
}

func TestParseLogLevel(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)

	level, err := parseLogLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, int64(log.LevelWarn), level)

	level, err = parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, int64(log.LevelDebug), level)
}

func TestResultReport(t *testing.T) {
	result := &portal.Result{
		State:    portal.StateSuccess,
		Message:  "login_ok",
		Username: "alice@cmcc",
		IP:       "10.0.0.8",
	}

	report := resultReport("login", result)
	assert.True(t, report.Online)
	assert.Equal(t, "success", report.State)
	assert.Equal(t, "alice@cmcc", report.Username)
	assert.Equal(t, "login_ok", report.Message)

	// A successful logout leaves the client offline
	assert.False(t, resultReport("logout", result).Online)

	result.State = portal.StateFailure
	assert.False(t, resultReport("login", result).Online)
}
