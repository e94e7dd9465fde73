// Admin endpoints for inspecting and controlling the engine.

package engine

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
	"github.com/sqlutions-fatec/radarmock/pkg/httputil"
	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/requestlog"
)

// RouteToggle is the body of PUT /__radarmock/routes.
type RouteToggle struct {
	Method  string `json:"method"`
	Pattern string `json:"pattern"`
	Enabled bool   `json:"enabled"`
}

// ChaosState is the body of GET /__radarmock/chaos.
type ChaosState struct {
	Config chaos.Config `json:"config"`
	Stats  chaos.Stats  `json:"stats"`
}

func (h *Handler) adminMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+AdminPrefix+"/health", h.handleHealth)
	mux.HandleFunc("GET "+AdminPrefix+"/routes", h.handleListRoutes)
	mux.HandleFunc("PUT "+AdminPrefix+"/routes", h.handleToggleRoute)
	mux.HandleFunc("POST "+AdminPrefix+"/reset", h.handleReset)
	mux.HandleFunc("GET "+AdminPrefix+"/requests", h.handleListRequests)
	mux.HandleFunc("DELETE "+AdminPrefix+"/requests", h.handleClearRequests)
	mux.HandleFunc("GET "+AdminPrefix+"/chaos", h.handleGetChaos)
	mux.HandleFunc("PUT "+AdminPrefix+"/chaos", h.handleUpdateChaos)
	mux.HandleFunc("DELETE "+AdminPrefix+"/chaos", h.handleResetChaosStats)
	mux.Handle("GET "+AdminPrefix+"/metrics", h.engine.Metrics().Handler())
	mux.HandleFunc(AdminPrefix+"/", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFound(w, "Unknown admin endpoint")
	})
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"enabled":   h.engine.IsEnabled(),
		"routes":    h.engine.Registry().Len(),
		"records":   h.engine.Counts(),
	})
}

func (h *Handler) handleListRoutes(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, model.NewList(h.engine.Registry().Routes()))
}

func (h *Handler) handleToggleRoute(w http.ResponseWriter, r *http.Request) {
	var body RouteToggle
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodySize)).Decode(&body); err != nil {
		httputil.WriteBadRequest(w, "Invalid JSON body")
		return
	}
	reg := h.engine.Registry()
	if err := reg.SetEnabled(body.Method, body.Pattern, body.Enabled); err != nil {
		httputil.WriteNotFound(w, "Route not found")
		return
	}
	h.log.Info("route toggled", "method", body.Method, "pattern", body.Pattern, "enabled", body.Enabled)
	httputil.WriteOK(w, reg.Lookup(body.Method, body.Pattern).info())
}

func (h *Handler) handleReset(w http.ResponseWriter, _ *http.Request) {
	h.engine.Reset()
	httputil.WriteOK(w, map[string]any{"records": h.engine.Counts()})
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRequestFilter(r)
	if err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	log := h.engine.RequestLog()
	httputil.WriteOK(w, model.List[*requestlog.Entry]{
		Items: nonNil(log.List(filter)),
		Total: log.Count(),
	})
}

func (h *Handler) handleClearRequests(w http.ResponseWriter, _ *http.Request) {
	h.engine.RequestLog().Clear()
	httputil.WriteNoContent(w)
}

func (h *Handler) handleGetChaos(w http.ResponseWriter, _ *http.Request) {
	inj := h.engine.Injector()
	httputil.WriteOK(w, ChaosState{Config: inj.Config(), Stats: inj.GetStats()})
}

func (h *Handler) handleUpdateChaos(w http.ResponseWriter, r *http.Request) {
	var cfg chaos.Config
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodySize)).Decode(&cfg); err != nil {
		httputil.WriteBadRequest(w, "Invalid JSON body")
		return
	}
	inj := h.engine.Injector()
	if err := inj.UpdateConfig(cfg); err != nil {
		httputil.WriteBadRequest(w, err.Error())
		return
	}
	h.log.Info("chaos configuration updated", "enabled", cfg.Enabled, "overrides", len(cfg.FailureRates))
	httputil.WriteOK(w, ChaosState{Config: inj.Config(), Stats: inj.GetStats()})
}

func (h *Handler) handleResetChaosStats(w http.ResponseWriter, _ *http.Request) {
	h.engine.Injector().ResetStats()
	httputil.WriteNoContent(w)
}

type filterError string

func (e filterError) Error() string { return string(e) }

func parseRequestFilter(r *http.Request) (*requestlog.Filter, error) {
	q := r.URL.Query()
	f := &requestlog.Filter{
		Method: q.Get("method"),
		Path:   q.Get("path"),
		Route:  q.Get("route"),
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"status", &f.StatusCode},
		{"limit", &f.Limit},
		{"offset", &f.Offset},
	}
	for _, p := range ints {
		raw := q.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, filterError("Invalid " + p.key)
		}
		*p.dst = n
	}
	if raw := q.Get("injected"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, filterError("Invalid injected")
		}
		f.Injected = &b
	}
	return f, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
