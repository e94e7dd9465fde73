package engine

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
	"github.com/sqlutions-fatec/radarmock/pkg/metrics"
	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/requestlog"
	"github.com/sqlutions-fatec/radarmock/pkg/resource"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

func chaosParams(content any) chaos.Params {
	return chaos.Params{Content: content, ErrorMessage: "Error fetching things"}
}

// newTestEngine builds an engine whose injector replays draws.
func newTestEngine(t *testing.T, reg *Registry, draws ...int) *Engine {
	t.Helper()
	inj, err := chaos.NewInjector(chaos.Config{Enabled: true}, chaos.WithRandomSource(chaos.Sequence(draws...)))
	require.NoError(t, err)
	return New(reg, WithInjector(inj))
}

func TestDispatch_Success(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultNamespace)
	var got *Request
	reg.MustHandle("POST", "/radars/:id/notes", func(_ context.Context, req *Request) (Reply, error) {
		got = req
		return Reply{Params: chaos.Params{Content: map[string]string{"id": req.Params["id"]}, FailureRate: 15}}, nil
	}, WithSuccessStatus(http.StatusCreated))
	e := newTestEngine(t, reg, 15)

	resp, ok := e.Dispatch(context.Background(), NewRequest("post", "/api/radars/CAM001/notes?verbose=1&tag=a&tag=b", `{"x":1}`))
	require.True(t, ok)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, map[string]string{"id": "CAM001"}, resp.Body)
	assert.False(t, resp.Failed())
	assert.Equal(t, "POST /radars/:id/notes", resp.Route)
	assert.Equal(t, 15, resp.Rate)

	require.NotNil(t, got)
	assert.Equal(t, "CAM001", got.Params["id"])
	assert.Equal(t, "1", got.QueryParams["verbose"])
	assert.Equal(t, []string{"a", "b"}, got.Query["tag"])
	assert.Equal(t, `{"x":1}`, got.Body)
}

func TestDispatch_InjectedFailure(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultNamespace)
	reg.MustHandle("GET", "/radars", func(context.Context, *Request) (Reply, error) {
		return Reply{Params: chaos.Params{Content: []string{}, ErrorMessage: "Error fetching radars", FailureRate: 10}}, nil
	})
	e := newTestEngine(t, reg, 9, 10)

	resp, ok := e.Dispatch(context.Background(), NewRequest("GET", "/api/radars", ""))
	require.True(t, ok)
	require.True(t, resp.Failed())
	assert.True(t, resp.Injected)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, chaos.NewEnvelope(400, "Error fetching radars"), resp.Body)

	resp, _ = e.Dispatch(context.Background(), NewRequest("GET", "/api/radars", ""))
	assert.False(t, resp.Failed())
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestDispatch_HandlerErrors(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultNamespace)
	reg.MustHandle("POST", "/invalid", func(context.Context, *Request) (Reply, error) {
		return Reply{}, &resource.ValidationError{Message: "Invalid JSON body"}
	})
	reg.MustHandle("POST", "/broken", func(context.Context, *Request) (Reply, error) {
		return Reply{}, errors.New("disk on fire")
	})
	reg.MustHandle("GET", "/panics", func(context.Context, *Request) (Reply, error) {
		panic("boom")
	})
	reg.MustHandle("GET", "/fine", okHandler("ok"))
	e := newTestEngine(t, reg, 99)

	tests := []struct {
		path       string
		method     string
		wantStatus int
		wantKey    string
	}{
		{"/api/invalid", "POST", http.StatusBadRequest, "Invalid JSON body"},
		{"/api/broken", "POST", http.StatusInternalServerError, MsgInternalError},
		{"/api/panics", "GET", http.StatusInternalServerError, MsgInternalError},
	}
	for _, tt := range tests {
		resp, ok := e.Dispatch(context.Background(), NewRequest(tt.method, tt.path, ""))
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.wantStatus, resp.Status, tt.path)
		require.NotNil(t, resp.Error, tt.path)
		assert.Equal(t, tt.wantKey, resp.Error.Key, tt.path)
		assert.Equal(t, chaos.AdditionalInfo, resp.Error.Context.AdditionalInfo, tt.path)
	}

	// A panic is isolated to its request.
	resp, ok := e.Dispatch(context.Background(), NewRequest("GET", "/api/fine", ""))
	require.True(t, ok)
	assert.Equal(t, "ok", resp.Body)
}

func TestDispatch_Passthrough(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultNamespace)
	reg.MustHandle("GET", "/users", okHandler("users"))
	e := newTestEngine(t, reg, 99)

	_, ok := e.Dispatch(context.Background(), NewRequest("GET", "/api/unknown", ""))
	assert.False(t, ok)

	_, ok = e.Dispatch(context.Background(), nil)
	assert.False(t, ok)

	e.SetEnabled(false)
	_, ok = e.Dispatch(context.Background(), NewRequest("GET", "/api/users", ""))
	assert.False(t, ok)
	assert.False(t, e.IsEnabled())

	e.SetEnabled(true)
	_, ok = e.Dispatch(context.Background(), NewRequest("GET", "/api/users", ""))
	assert.True(t, ok)
}

func TestDispatch_RecordsHistoryAndMetrics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(DefaultNamespace)
	reg.MustHandle("GET", "/addresses/:id", func(context.Context, *Request) (Reply, error) {
		return Reply{Params: chaos.Params{ErrorMessage: "Error fetching address details", FailureRate: 10}}, nil
	})
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	history := requestlog.NewMemoryStore(10)
	inj, err := chaos.NewInjector(chaos.Config{Enabled: true}, chaos.WithRandomSource(chaos.Sequence(0, 50)))
	require.NoError(t, err)
	e := New(reg, WithInjector(inj), WithMetrics(collector), WithRequestLog(history))

	_, _ = e.Dispatch(context.Background(), NewRequest("GET", "/api/addresses/1?x=y", ""))
	_, _ = e.Dispatch(context.Background(), NewRequest("GET", "/api/addresses/2", ""))

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Requests.WithLabelValues("GET", "GET /addresses/:id", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Requests.WithLabelValues("GET", "GET /addresses/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.InjectedFailures.WithLabelValues("GET /addresses/:id", "400")))

	entries := history.List(nil)
	require.Len(t, entries, 2)
	assert.Equal(t, "/api/addresses/2", entries[0].Path)
	assert.Equal(t, http.StatusOK, entries[0].ResponseStatus)
	assert.Equal(t, "/api/addresses/1", entries[1].Path)
	assert.Equal(t, "x=y", entries[1].QueryString)
	assert.True(t, entries[1].Injected)
	assert.Equal(t, "Error fetching address details", entries[1].Error)
	assert.NotEmpty(t, entries[1].ID)

	stats := inj.GetStats()
	assert.Equal(t, int64(2), stats.TotalCalls)
	assert.Equal(t, int64(1), stats.InjectedFailures)
}

func TestEngine_Reset(t *testing.T) {
	t.Parallel()

	st := store.New(&seed.Snapshot{Addresses: []model.Address{{ID: 1, Addr: "Rua A"}}})
	reg := NewRegistry(DefaultNamespace)
	reg.MustHandle("DELETE", "/addresses", func(context.Context, *Request) (Reply, error) {
		st.Addresses = nil
		return Reply{}, nil
	})
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	e := New(reg, WithStore(st), WithMetrics(collector))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Records.WithLabelValues(seed.Addresses)))

	_, ok := e.Dispatch(context.Background(), NewRequest("DELETE", "/api/addresses", ""))
	require.True(t, ok)
	assert.Equal(t, 0, e.Counts()[seed.Addresses])
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.Records.WithLabelValues(seed.Addresses)))
	assert.Equal(t, 1, e.RequestLog().Count())

	e.Reset()
	assert.Equal(t, 1, e.Counts()[seed.Addresses])
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Records.WithLabelValues(seed.Addresses)))
	assert.Equal(t, 0, e.RequestLog().Count())
	assert.Zero(t, e.Injector().GetStats().TotalCalls)
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req := NewRequest("get", "/api/registers?radarId=CAM001&page=2", "")
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/api/registers", req.Path)
	assert.Equal(t, "CAM001", req.QueryParams["radarId"])
	assert.Equal(t, "2", req.Query.Get("page"))

	req = NewRequest("GET", "relative", "")
	assert.Equal(t, "relative", req.Path)
	assert.Empty(t, req.QueryParams)
}
