package requestlog

import "time"

// Entry captures one served request.
type Entry struct {
	// ID is a unique identifier for the log entry.
	ID string `json:"id"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp"`

	Method      string `json:"method"`
	Path        string `json:"path"`
	QueryString string `json:"queryString,omitempty"`

	// Body is the request body content (truncated to MaxBodySize).
	Body string `json:"body,omitempty"`

	// BodySize is the original body size in bytes.
	BodySize int `json:"bodySize"`

	RemoteAddr string `json:"remoteAddr,omitempty"`

	// Route is the "METHOD /pattern" key of the matched route, empty for
	// passthrough.
	Route string `json:"route,omitempty"`

	ResponseStatus int `json:"responseStatus"`

	// Injected is true when the response is a simulated failure.
	Injected bool `json:"injected,omitempty"`

	// Passthrough is true when no route matched.
	Passthrough bool `json:"passthrough,omitempty"`

	DurationMs int `json:"durationMs"`

	// Error contains the error key of a failed response.
	Error string `json:"error,omitempty"`
}

// MaxBodySize bounds the request body kept in an entry.
const MaxBodySize = 10 << 10

// TruncateBody shortens body to MaxBodySize bytes.
func TruncateBody(body string) string {
	if len(body) <= MaxBodySize {
		return body
	}
	return body[:MaxBodySize]
}
