// Package matching resolves request paths against route patterns.
//
// Patterns are slash-separated segments. A segment is either a literal, a
// named placeholder (":id" or "{id}") that captures exactly one segment,
// or a trailing "*" that captures the rest of the path. Matching is
// scored so the most specific pattern wins: an exact match beats any
// placeholder match, and among placeholder matches the one with more
// literal segments wins. Score constants are defined in scores.go.
package matching
