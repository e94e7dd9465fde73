package requestlog

import "strings"

// Logger is the minimal interface for logging request entries.
type Logger interface {
	Log(entry *Entry)
}

// Store defines the interface for request history storage.
type Store interface {
	Logger

	// Get retrieves a log entry by ID.
	Get(id string) *Entry

	// List returns log entries newest first, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all log entries.
	Clear()

	// Count returns the number of log entries.
	Count() int
}

// Filter defines criteria for filtering request logs.
type Filter struct {
	Method string

	// Path filters by path prefix.
	Path string

	Route string

	StatusCode int

	// Injected, when set, keeps only simulated failures (true) or only
	// other responses (false).
	Injected *bool

	// Limit is the maximum number of entries to return.
	Limit int

	// Offset is the number of entries to skip.
	Offset int
}

// Matches reports whether entry satisfies every set criterion.
func (f *Filter) Matches(entry *Entry) bool {
	if f == nil {
		return true
	}
	switch {
	case f.Method != "" && !strings.EqualFold(entry.Method, f.Method):
		return false
	case f.Path != "" && !strings.HasPrefix(entry.Path, f.Path):
		return false
	case f.Route != "" && entry.Route != f.Route:
		return false
	case f.StatusCode != 0 && entry.ResponseStatus != f.StatusCode:
		return false
	case f.Injected != nil && entry.Injected != *f.Injected:
		return false
	}
	return true
}
