// Package api binds the mock API routes to the resource engines.
//
// Each handler decodes and validates its body, runs the matching engine
// operation and turns the result into failure-wrapper parameters: the
// content on success, or a specific error with rate chaos.Always for
// not-found, conflict and validation outcomes. Successful calls fail at
// random with the per-route rates below, which mirror what the real
// backend's front-end was tested against.
package api
