package engine

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sqlutions-fatec/radarmock/internal/matching"
)

// DefaultNamespace is the path prefix routes are mounted under.
const DefaultNamespace = "/api"

// RouteOption configures a route at registration.
type RouteOption func(*Route)

// WithName sets a human-readable route name.
func WithName(name string) RouteOption {
	return func(r *Route) { r.Name = name }
}

// WithSuccessStatus sets the status of successful replies.
func WithSuccessStatus(status int) RouteOption {
	return func(r *Route) { r.SuccessStatus = status }
}

// Disabled registers the route switched off.
func Disabled() RouteOption {
	return func(r *Route) { r.Enabled = false }
}

// Registry holds routes in registration order. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	namespace string
	routes    []*Route
	disabled  []string
}

// NewRegistry creates a registry mounting routes under namespace. An empty
// namespace mounts them at the root.
func NewRegistry(namespace string) *Registry {
	return &Registry{namespace: matching.Join(namespace, "")}
}

// Namespace returns the mount prefix, always starting with a slash.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Handle registers h for method and pattern. Patterns use ":name"
// placeholders and are relative to the namespace.
func (r *Registry) Handle(method, pattern string, h HandlerFunc, opts ...RouteOption) (*Route, error) {
	if h == nil {
		return nil, fmt.Errorf("route %s %s: nil handler", method, pattern)
	}
	if err := matching.ValidatePattern(pattern); err != nil {
		return nil, fmt.Errorf("route %s %s: %w", method, pattern, err)
	}
	rt := &Route{
		Method:        strings.ToUpper(method),
		Pattern:       pattern,
		Enabled:       true,
		SuccessStatus: http.StatusOK,
		Handler:       h,
		path:          matching.Join(r.namespace, pattern),
	}
	for _, opt := range opts {
		opt(rt)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lookup(rt.Method, rt.Pattern) != nil {
		return nil, fmt.Errorf("route %s already registered", rt.Key())
	}
	if r.isDisabled(rt.Key()) {
		rt.Enabled = false
	}
	r.routes = append(r.routes, rt)
	return rt, nil
}

// MustHandle is like Handle but panics on error.
func (r *Registry) MustHandle(method, pattern string, h HandlerFunc, opts ...RouteOption) *Route {
	rt, err := r.Handle(method, pattern, h, opts...)
	if err != nil {
		panic(err)
	}
	return rt
}

// SetEnabled switches the route registered for method and pattern.
func (r *Registry) SetEnabled(method, pattern string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt := r.lookup(strings.ToUpper(method), pattern)
	if rt == nil {
		return fmt.Errorf("route %s %s not registered", strings.ToUpper(method), pattern)
	}
	rt.Enabled = enabled
	return nil
}

// DisableMatching switches off every route, present or registered later,
// whose "METHOD /pattern" key matches one of the globs.
func (r *Registry) DisableMatching(globs ...string) error {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("invalid route glob %q", g)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled = append(r.disabled, globs...)
	for _, rt := range r.routes {
		if r.isDisabled(rt.Key()) {
			rt.Enabled = false
		}
	}
	return nil
}

// Match resolves method and path to the best-scoring enabled route. Ties
// go to the route registered first.
func (r *Registry) Match(method, path string) (*Route, matching.Params) {
	method = strings.ToUpper(method)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best      *Route
		bestScore int
		params    matching.Params
	)
	for _, rt := range r.routes {
		if !rt.Enabled || rt.Method != method {
			continue
		}
		score, p := matching.MatchPath(rt.path, path)
		if score > bestScore {
			best, bestScore, params = rt, score, p
		}
	}
	return best, params
}

// Lookup returns the route registered for method and pattern, or nil.
func (r *Registry) Lookup(method, pattern string) *Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(strings.ToUpper(method), pattern)
}

// Routes lists every route in registration order.
func (r *Registry) Routes() []RouteInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, rt.info())
	}
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

func (r *Registry) lookup(method, pattern string) *Route {
	for _, rt := range r.routes {
		if rt.Method == method && rt.Pattern == pattern {
			return rt
		}
	}
	return nil
}

func (r *Registry) isDisabled(key string) bool {
	for _, g := range r.disabled {
		if ok, _ := doublestar.Match(g, key); ok {
			return true
		}
	}
	return false
}
