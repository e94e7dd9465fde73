// Package requestlog captures the requests served by the mock backend for
// inspection through the admin API.
//
// It is distinct from operational logging (log/slog): entries describe
// what a front-end developer sent and what the mock answered, including
// whether the answer was a simulated failure or a passthrough.
//
//	store := requestlog.NewMemoryStore(1000)
//	store.Log(&requestlog.Entry{Method: "GET", Path: "/api/radars"})
//	recent := store.List(&requestlog.Filter{Limit: 20})
package requestlog
