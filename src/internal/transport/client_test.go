// FILE: srunauth/src/internal/transport/client_test.go
package transport

import (
	"context"
	"net"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

// startServer serves handler over an in-memory listener and returns a client dialing it.
func startServer(t *testing.T, cfg config.HTTPConfig, handler fasthttp.RequestHandler) *Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: handler}
	go func() {
		_ = server.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = server.Shutdown()
		_ = ln.Close()
	})

	client, err := NewClient(cfg, "test-agent/1.0", newTestLogger(),
		WithDial(func(addr string) (net.Conn, error) {
			return ln.Dial()
		}))
	require.NoError(t, err)
	return client
}

func defaultHTTPConfig() config.HTTPConfig {
	return config.HTTPConfig{TimeoutMS: 2000}
}

func TestClient_Get(t *testing.T) {
	var (
		gotPath  string
		gotQuery *fasthttp.Args
		gotUA    string
	)
	client := startServer(t, defaultHTTPConfig(), func(ctx *fasthttp.RequestCtx) {
		gotPath = string(ctx.Path())
		gotQuery = &fasthttp.Args{}
		ctx.QueryArgs().CopyTo(gotQuery)
		gotUA = string(ctx.Request.Header.Peek("User-Agent"))
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(`_({"challenge":"abc"})`)
	})

	params := url.Values{}
	params.Set("callback", "_")
	params.Set("info", "{SRBX1}a+b/c=")
	params.Set("username", "user@cmcc")

	resp, err := client.Get(context.Background(), "http://portal.test/cgi-bin/get_challenge?fixed=1", params)
	require.NoError(t, err)

	assert.Equal(t, fasthttp.StatusOK, resp.StatusCode)
	assert.Equal(t, `_({"challenge":"abc"})`, string(resp.Body))
	assert.Equal(t, "/cgi-bin/get_challenge", gotPath)
	assert.Equal(t, "test-agent/1.0", gotUA)

	require.NotNil(t, gotQuery)
	assert.Equal(t, "1", string(gotQuery.Peek("fixed")), "existing query must be kept")
	assert.Equal(t, "_", string(gotQuery.Peek("callback")))
	assert.Equal(t, "{SRBX1}a+b/c=", string(gotQuery.Peek("info")), "reserved symbols must survive encoding")
	assert.Equal(t, "user@cmcc", string(gotQuery.Peek("username")))
}

func TestClient_UserAgentOverride(t *testing.T) {
	cfg := defaultHTTPConfig()
	cfg.UserAgentHeader = "override/2.0"

	var gotUA string
	client := startServer(t, cfg, func(ctx *fasthttp.RequestCtx) {
		gotUA = string(ctx.Request.Header.Peek("User-Agent"))
	})

	_, err := client.Get(context.Background(), "http://portal.test/", nil)
	require.NoError(t, err)
	assert.Equal(t, "override/2.0", gotUA)
	assert.Equal(t, "override/2.0", client.GetStats()["user_agent"])
}

func TestClient_Non200(t *testing.T) {
	client := startServer(t, defaultHTTPConfig(), func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusBadGateway)
		ctx.SetBodyString("upstream down")
	})

	resp, err := client.Get(context.Background(), "http://portal.test/cgi-bin/srun_portal", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNetwork)
	require.NotNil(t, resp)
	assert.Equal(t, fasthttp.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "upstream down", string(resp.Body))
}

func TestClient_CancelledContext(t *testing.T) {
	var hits atomic.Int32
	client := startServer(t, defaultHTTPConfig(), func(ctx *fasthttp.RequestCtx) {
		hits.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "http://portal.test/", nil)
	assert.ErrorIs(t, err, core.ErrNetwork)
	assert.Equal(t, int32(0), hits.Load(), "cancelled request must not reach the server")
}

func TestClient_ContextDeadline(t *testing.T) {
	client := startServer(t, defaultHTTPConfig(), func(ctx *fasthttp.RequestCtx) {
		time.Sleep(500 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Get(ctx, "http://portal.test/", nil)
	assert.ErrorIs(t, err, core.ErrNetwork)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(config.HTTPConfig{TimeoutMS: 0}, "ua", newTestLogger())
	assert.ErrorIs(t, err, core.ErrConfiguration)

	_, err = NewClient(config.HTTPConfig{
		TimeoutMS: 1000,
		TLS:       config.TLSClientConfig{MinVersion: "TLS1.3", MaxVersion: "TLS1.2"},
	}, "ua", newTestLogger())
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestEndpointName(t *testing.T) {
	assert.Equal(t, "http://a/b", endpointName("http://a/b?password=x"))
	assert.Equal(t, "http://a/b", endpointName("http://a/b"))
}
