// Package tracing wires OpenTelemetry tracing for radarmock.
//
// Init installs a global tracer provider. When tracing is disabled a noop
// provider is installed, so instrumented code can always call Tracer and
// start spans without checking configuration.
package tracing
