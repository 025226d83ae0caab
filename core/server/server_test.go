package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greeting-server/core/server"
	"greeting-server/feature/greeting"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type failingFeature struct{}

func (failingFeature) Name() string                { return "failing" }
func (failingFeature) IsEnabled() bool             { return true }
func (failingFeature) Load(app fiber.Router) error { return fmt.Errorf("boom") }

func newGreetingServer(t *testing.T, port int) *server.Server {
	t.Helper()
	logg := zap.NewNop()
	srv, err := server.New(server.Config{Port: port, ShutdownTimeoutSeconds: 2}, logg, noop.NewTracerProvider(), greeting.NewFeature(port, logg))
	require.NoError(t, err)
	return srv
}

// freePort asks the kernel for an unused port and releases it again.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServer_GreetingRoute(t *testing.T) {
	for _, port := range []int{1024, 5000, 8080, 65535} {
		t.Run(fmt.Sprint(port), func(t *testing.T) {
			srv := newGreetingServer(t, port)

			resp, err := srv.App().Test(httptest.NewRequest("GET", "/?ignored=1", nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
			assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
			assert.Equal(t, fmt.Sprintf("Hello, World!, port: %d", port), readBody(t, resp))
		})
	}
}

func TestServer_Idempotent(t *testing.T) {
	srv := newGreetingServer(t, 8080)

	first, err := srv.App().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	second, err := srv.App().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, readBody(t, first), readBody(t, second))
}

func TestServer_NotFound(t *testing.T) {
	srv := newGreetingServer(t, 8080)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestNew_FeatureLoadError(t *testing.T) {
	srv, err := server.New(server.Config{Port: 8080}, zap.NewNop(), noop.NewTracerProvider(), failingFeature{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.Nil(t, srv)
}

func TestServer_Listen(t *testing.T) {
	t.Run("OutOfRange", func(t *testing.T) {
		for _, port := range []int{-1, 65536, 100000} {
			srv := newGreetingServer(t, port)
			err := srv.Listen()
			assert.ErrorIs(t, err, server.ErrBind)
			assert.Nil(t, srv.Addr())
		}
	})

	t.Run("PortInUse", func(t *testing.T) {
		occupied, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer occupied.Close()
		port := occupied.Addr().(*net.TCPAddr).Port

		srv := newGreetingServer(t, port)
		err = srv.Start(context.Background())
		assert.ErrorIs(t, err, server.ErrBind)
	})
}

func TestServer_Serve(t *testing.T) {
	t.Run("BeforeListen", func(t *testing.T) {
		srv := newGreetingServer(t, 8080)
		assert.Error(t, srv.Serve(context.Background()))
	})

	t.Run("RealSocket", func(t *testing.T) {
		port := freePort(t)
		srv := newGreetingServer(t, port)
		require.NoError(t, srv.Listen())
		require.NotNil(t, srv.Addr())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Serve(ctx) }()

		client := &http.Client{Timeout: 5 * time.Second}
		url := fmt.Sprintf("http://127.0.0.1:%d/", port)

		resp, err := client.Get(url)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, fmt.Sprintf("Hello, World!, port: %d", port), readBody(t, resp))

		resp, err = client.Get(url + "missing")
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		resp.Body.Close()

		// A second listener on the same port must fail while the first is serving.
		second := newGreetingServer(t, port)
		assert.ErrorIs(t, second.Listen(), server.ErrBind)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})
}
