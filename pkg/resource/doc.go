// Package resource implements the query engines of the mock backend: one
// engine per collection, each exposing list, get and mutation operations
// over a shared store.Store.
//
// Engines return domain values or one of the typed errors in this package
// (*ValidationError, *NotFoundError, *ConflictError). They perform no
// locking and no randomness; the route layer decides how results and
// errors are rendered.
//
// Updates follow replace-if-truthy semantics: a field is overwritten only
// when the input carries a non-zero value for it.
package resource
