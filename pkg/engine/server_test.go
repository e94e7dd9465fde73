package engine

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_StartStop(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	srv := NewServer("127.0.0.1:0", h)
	assert.False(t, srv.IsRunning())

	require.NoError(t, srv.Start())
	assert.True(t, srv.IsRunning())
	assert.Error(t, srv.Start(), "second start must fail")

	resp, err := http.Get("http://" + srv.Addr() + AdminPrefix + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, srv.Stop(context.Background()))
	assert.False(t, srv.IsRunning())
	assert.Zero(t, srv.Uptime())
	require.NoError(t, srv.Stop(context.Background()), "stop is idempotent")
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	first := NewServer("127.0.0.1:0", http.NotFoundHandler())
	require.NoError(t, first.Start())
	defer func() { _ = first.Stop(context.Background()) }()

	second := NewServer(first.Addr(), http.NotFoundHandler())
	assert.Error(t, second.Start())
}

func TestServer_Run(t *testing.T) {
	t.Parallel()

	srv := NewServer("127.0.0.1:0", newTestHandler(t), WithTimeouts(time.Second, time.Second))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, time.Second) }()

	require.Eventually(t, srv.IsRunning, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.False(t, srv.IsRunning())
}
