package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveRequest(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveRequest("GET", "GET /radars", 200, 3*time.Millisecond)
	c.ObserveRequest("GET", "GET /radars", 200, time.Millisecond)
	c.ObserveRequest("GET", "GET /radars", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Requests.WithLabelValues("GET", "GET /radars", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Requests.WithLabelValues("GET", "GET /radars", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Durations))
}

func TestCollector_FailuresPassthroughRecords(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.InjectedFailure("POST /radars", 400)
	c.PassedThrough()
	c.PassedThrough()
	c.SetRecords(map[string]int{"radars": 7, "users": 3})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.InjectedFailures.WithLabelValues("POST /radars", "400")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Passthrough))
	assert.Equal(t, 7.0, testutil.ToFloat64(c.Records.WithLabelValues("radars")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Records.WithLabelValues("users")))
}

func TestNewCollector_ReusesRegistered(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.PassedThrough()
	assert.Equal(t, 1.0, testutil.ToFloat64(second.Passthrough))
}

func TestCollector_NilIsNoop(t *testing.T) {
	t.Parallel()

	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveRequest("GET", "GET /users", 200, time.Millisecond)
		c.InjectedFailure("GET /users", 500)
		c.PassedThrough()
		c.SetRecords(map[string]int{"users": 1})
	})
}

func TestCollector_Handler(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	c.ObserveRequest("DELETE", "DELETE /registers/:id", 200, time.Millisecond)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `radarmock_requests_total{method="DELETE",route="DELETE /registers/:id",status="200"} 1`)
}
