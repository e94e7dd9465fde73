package engine

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
)

// HandlerFunc serves one matched route. It returns the content and error
// policy to run through the failure-injection wrapper. A returned error is
// rendered as a 400 envelope for *resource.ValidationError and 500 otherwise.
type HandlerFunc func(ctx context.Context, req *Request) (Reply, error)

// Request is a logical mock request.
type Request struct {
	Method string
	Path   string

	// Params holds the placeholder values of the matched route.
	Params map[string]string

	Query url.Values

	// QueryParams holds the first value of every query key.
	QueryParams map[string]string

	// Body is the raw request body.
	Body string

	RemoteAddr string
}

// NewRequest builds a request from a method, a target that may carry a
// query string, and a raw body. A target that is not a valid URL is used
// as the path verbatim.
func NewRequest(method, target, body string) *Request {
	req := &Request{
		Method: strings.ToUpper(method),
		Path:   target,
		Query:  url.Values{},
		Body:   body,
	}
	if u, err := url.ParseRequestURI(target); err == nil {
		req.Path = u.Path
		req.Query = u.Query()
	}
	req.QueryParams = firstValues(req.Query)
	return req
}

func firstValues(q url.Values) map[string]string {
	out := make(map[string]string, len(q))
	for k, v := range q {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// Reply is what a handler hands to the wrapper. Status overrides the
// route's success status when non-zero.
type Reply struct {
	Status int
	chaos.Params
}

// Route is a registered mock route.
type Route struct {
	Method  string
	Pattern string
	Name    string

	// Enabled routes take part in matching. Disabled routes are skipped
	// before any pattern is compared.
	Enabled bool

	// SuccessStatus is the HTTP status of a successful reply. Zero means 200.
	SuccessStatus int

	Handler HandlerFunc

	path string
}

// Key returns the "METHOD /pattern" key used for failure-rate overrides,
// metrics and the request log.
func (r *Route) Key() string {
	return r.Method + " " + r.Pattern
}

// RouteInfo describes a route for listings.
type RouteInfo struct {
	Method        string `json:"method"`
	Pattern       string `json:"pattern"`
	Path          string `json:"path"`
	Name          string `json:"name,omitempty"`
	Enabled       bool   `json:"enabled"`
	SuccessStatus int    `json:"successStatus"`
}

func (r *Route) info() RouteInfo {
	return RouteInfo{
		Method:        r.Method,
		Pattern:       r.Pattern,
		Path:          r.path,
		Name:          r.Name,
		Enabled:       r.Enabled,
		SuccessStatus: r.SuccessStatus,
	}
}

// Response is the resolved result of a dispatched request.
type Response struct {
	Status int
	Body   any

	// Route is the key of the matched route.
	Route string

	// Error is set when the response is an error envelope.
	Error *chaos.Envelope

	// Injected is true for a simulated failure.
	Injected bool

	// Rate is the effective failure rate of the call.
	Rate int
}

// Failed reports whether the response is an error envelope.
func (r *Response) Failed() bool {
	return r.Error != nil
}

// JSON encodes the response body.
func (r *Response) JSON() ([]byte, error) {
	return json.Marshal(r.Body)
}

func errorResponse(route string, env *chaos.Envelope) *Response {
	return &Response{Status: env.Code, Body: env, Route: route, Error: env}
}
