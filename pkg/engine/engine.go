package engine

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
	"github.com/sqlutions-fatec/radarmock/pkg/logging"
	"github.com/sqlutions-fatec/radarmock/pkg/metrics"
	"github.com/sqlutions-fatec/radarmock/pkg/requestlog"
	"github.com/sqlutions-fatec/radarmock/pkg/resource"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
	"github.com/sqlutions-fatec/radarmock/pkg/tracing"
)

// SpanName names the span recorded for every dispatched request.
const SpanName = "radarmock.dispatch"

// Messages of envelopes produced by the dispatcher itself.
const (
	MsgInternalError = "Internal server error"
)

// Engine dispatches logical requests to registered routes.
type Engine struct {
	mu sync.Mutex

	registry   *Registry
	store      *store.Store
	injector   *chaos.Injector
	metrics    *metrics.Collector
	requestLog requestlog.Store
	tracer     trace.Tracer
	log        *slog.Logger

	enabled atomic.Bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithStore sets the store the routes operate on. It enables Reset and
// the record gauges.
func WithStore(s *store.Store) Option {
	return func(e *Engine) { e.store = s }
}

// WithInjector sets the failure injector.
func WithInjector(i *chaos.Injector) Option {
	return func(e *Engine) {
		if i != nil {
			e.injector = i
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// WithRequestLog sets the request history store.
func WithRequestLog(s requestlog.Store) Option {
	return func(e *Engine) {
		if s != nil {
			e.requestLog = s
		}
	}
}

// WithTracer sets the tracer used for dispatch spans.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// New creates an engine over reg. Without options the engine injects
// failures with the default random source, keeps a default-sized request
// log and records no metrics.
func New(reg *Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = NewRegistry(DefaultNamespace)
	}
	e := &Engine{
		registry: reg,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.injector == nil {
		// An empty config cannot fail validation.
		e.injector, _ = chaos.NewInjector(chaos.Config{Enabled: true})
	}
	if e.requestLog == nil {
		e.requestLog = requestlog.NewMemoryStore(requestlog.DefaultMaxEntries)
	}
	if e.tracer == nil {
		e.tracer = tracing.Tracer()
	}
	e.log = logging.Component(e.log, "engine")
	e.enabled.Store(true)
	e.updateRecords()
	return e
}

// Registry returns the route registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Injector returns the failure injector.
func (e *Engine) Injector() *chaos.Injector { return e.injector }

// RequestLog returns the request history.
func (e *Engine) RequestLog() requestlog.Store { return e.requestLog }

// Metrics returns the metrics collector, which may be nil.
func (e *Engine) Metrics() *metrics.Collector { return e.metrics }

// IsEnabled reports whether the engine intercepts requests.
func (e *Engine) IsEnabled() bool { return e.enabled.Load() }

// SetEnabled switches interception. A disabled engine passes every
// request through.
func (e *Engine) SetEnabled(enabled bool) { e.enabled.Store(enabled) }

// Counts returns the current record count per collection, or nil when the
// engine has no store.
func (e *Engine) Counts() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.store == nil {
		return nil
	}
	return e.store.Counts()
}

// Reset restores the store to its seed and clears injector statistics and
// request history.
func (e *Engine) Reset() {
	e.mu.Lock()
	if e.store != nil {
		e.store.Reset()
	}
	e.mu.Unlock()

	e.injector.ResetStats()
	e.requestLog.Clear()
	e.updateRecords()
	e.log.Info("state reset")
}

// Dispatch resolves req to a response. It returns false when the engine is
// disabled or no enabled route matches, in which case the request should
// be passed through.
func (e *Engine) Dispatch(ctx context.Context, req *Request) (*Response, bool) {
	if req == nil || !e.enabled.Load() {
		return nil, false
	}
	route, params := e.registry.Match(req.Method, req.Path)
	if route == nil {
		return nil, false
	}

	start := time.Now()
	key := route.Key()
	ctx, span := e.tracer.Start(ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", route.Method),
			attribute.String("http.route", route.Pattern),
			attribute.String("url.path", req.Path),
		),
	)
	defer span.End()

	call := *req
	call.Params = maps.Clone(params)
	if call.Query == nil {
		call.Query = map[string][]string{}
	}
	if call.QueryParams == nil {
		call.QueryParams = firstValues(call.Query)
	}

	e.mu.Lock()
	resp := e.invoke(ctx, route, &call)
	e.mu.Unlock()

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int("http.response.status_code", resp.Status),
		attribute.Int("radarmock.failure_rate", resp.Rate),
		attribute.Bool("radarmock.injected", resp.Injected),
	)
	if resp.Failed() {
		span.SetStatus(codes.Error, resp.Error.Key)
	}

	e.metrics.ObserveRequest(route.Method, key, resp.Status, elapsed)
	if resp.Injected {
		e.metrics.InjectedFailure(key, resp.Status)
	}
	if route.Method != http.MethodGet {
		e.updateRecords()
	}

	e.requestLog.Log(newEntry(&call, resp, start, elapsed))
	e.log.Debug("request dispatched",
		"route", key,
		"path", req.Path,
		"status", resp.Status,
		"injected", resp.Injected,
		"duration", elapsed,
	)
	return resp, true
}

func (e *Engine) invoke(ctx context.Context, route *Route, req *Request) (resp *Response) {
	key := route.Key()
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Error("route handler panicked",
				"route", key,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			resp = errorResponse(key, chaos.NewEnvelope(http.StatusInternalServerError, MsgInternalError))
		}
	}()

	reply, err := route.Handler(ctx, req)
	if err != nil {
		var verr *resource.ValidationError
		if errors.As(err, &verr) {
			return errorResponse(key, chaos.NewEnvelope(http.StatusBadRequest, verr.Error()))
		}
		e.log.Error("route handler failed", "route", key, "error", err)
		return errorResponse(key, chaos.NewEnvelope(http.StatusInternalServerError, MsgInternalError))
	}

	d := e.injector.Wrap(key, reply.Params)
	return &Response{
		Status:   d.Status(cmp.Or(reply.Status, route.SuccessStatus)),
		Body:     d.Body(),
		Route:    key,
		Error:    d.Error,
		Injected: d.Injected,
		Rate:     d.Rate,
	}
}

func (e *Engine) updateRecords() {
	if e.metrics == nil {
		return
	}
	if counts := e.Counts(); counts != nil {
		e.metrics.SetRecords(counts)
	}
}

func newEntry(req *Request, resp *Response, start time.Time, elapsed time.Duration) *requestlog.Entry {
	entry := &requestlog.Entry{
		Timestamp:      start,
		Method:         req.Method,
		Path:           req.Path,
		QueryString:    req.Query.Encode(),
		Body:           requestlog.TruncateBody(req.Body),
		BodySize:       len(req.Body),
		RemoteAddr:     req.RemoteAddr,
		Route:          resp.Route,
		ResponseStatus: resp.Status,
		Injected:       resp.Injected,
		DurationMs:     int(elapsed.Milliseconds()),
	}
	if resp.Error != nil {
		entry.Error = resp.Error.Key
	}
	return entry
}
