package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	stdhttputil "net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/sqlutions-fatec/radarmock/pkg/httputil"
	"github.com/sqlutions-fatec/radarmock/pkg/logging"
	"github.com/sqlutions-fatec/radarmock/pkg/requestlog"
)

// AdminPrefix is the path prefix of the admin endpoints.
const AdminPrefix = "/__radarmock"

// MaxRequestBodySize is the maximum accepted request body (1 MiB).
const MaxRequestBodySize = 1 << 20

// DefaultLatency is the simulated response time of mocked routes.
const DefaultLatency = 400 * time.Millisecond

// Messages of envelopes produced by the HTTP adapter.
const (
	MsgBodyTooLarge   = "Request body too large"
	MsgBodyUnreadable = "Failed to read request body"
	MsgNoUpstream     = "No upstream configured for passthrough"
	MsgUpstreamFailed = "Upstream request failed"
)

// Handler adapts net/http requests to an Engine.
type Handler struct {
	engine   *Engine
	latency  time.Duration
	upstream *url.URL
	proxy    *stdhttputil.ReverseProxy
	admin    *http.ServeMux
	log      *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLatency sets the delay applied before writing mocked responses.
// Zero disables it.
func WithLatency(d time.Duration) HandlerOption {
	return func(h *Handler) { h.latency = max(d, 0) }
}

// WithUpstream forwards unmatched requests to u.
func WithUpstream(u *url.URL) HandlerOption {
	return func(h *Handler) { h.upstream = u }
}

// WithHandlerLogger sets the operational logger.
func WithHandlerLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// NewHandler creates the HTTP adapter for e.
func NewHandler(e *Engine, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:  e,
		latency: DefaultLatency,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = logging.Component(h.log, "http")
	if h.upstream != nil {
		h.proxy = h.newProxy(h.upstream)
	}
	h.admin = h.adminMux()
	return h
}

// Engine returns the adapted engine.
func (h *Handler) Engine() *Engine { return h.engine }

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == AdminPrefix || strings.HasPrefix(r.URL.Path, AdminPrefix+"/") {
		h.admin.ServeHTTP(w, r)
		return
	}

	start := time.Now()

	// MaxBytesReader fails the read instead of truncating.
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.log.Warn("request body too large", "path", r.URL.Path, "limit", MaxRequestBodySize)
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		httputil.WriteBadRequest(w, MsgBodyUnreadable)
		return
	}

	req := &Request{
		Method:     r.Method,
		Path:       r.URL.Path,
		Query:      r.URL.Query(),
		Body:       string(body),
		RemoteAddr: r.RemoteAddr,
	}
	req.QueryParams = firstValues(req.Query)

	resp, ok := h.engine.Dispatch(r.Context(), req)
	if !ok {
		h.passthrough(w, r, body, start)
		return
	}

	if err := h.wait(r.Context()); err != nil {
		h.log.Debug("client went away during latency", "path", r.URL.Path, "error", err)
		return
	}
	httputil.WriteJSON(w, resp.Status, resp.Body)
}

func (h *Handler) wait(ctx context.Context) error {
	if h.latency <= 0 {
		return nil
	}
	t := time.NewTimer(h.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Handler) passthrough(w http.ResponseWriter, r *http.Request, body []byte, start time.Time) {
	entry := &requestlog.Entry{
		Timestamp:   start,
		Method:      r.Method,
		Path:        r.URL.Path,
		QueryString: r.URL.RawQuery,
		Body:        requestlog.TruncateBody(string(body)),
		BodySize:    len(body),
		RemoteAddr:  r.RemoteAddr,
		Passthrough: true,
	}
	defer func() {
		entry.DurationMs = int(time.Since(start).Milliseconds())
		h.engine.RequestLog().Log(entry)
	}()

	if h.proxy == nil {
		entry.ResponseStatus = http.StatusBadGateway
		entry.Error = MsgNoUpstream
		httputil.WriteError(w, http.StatusBadGateway, MsgNoUpstream)
		return
	}

	h.engine.Metrics().PassedThrough()
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.proxy.ServeHTTP(rec, r)
	entry.ResponseStatus = rec.status
}

func (h *Handler) newProxy(target *url.URL) *stdhttputil.ReverseProxy {
	return &stdhttputil.ReverseProxy{
		Rewrite: func(pr *stdhttputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			h.log.Warn("upstream request failed", "upstream", target.String(), "path", r.URL.Path, "error", err)
			httputil.WriteError(w, http.StatusBadGateway, MsgUpstreamFailed)
		},
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
