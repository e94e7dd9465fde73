// Package metrics exposes Prometheus metrics for the mock engine.
//
// A Collector registers its vectors against a prometheus.Registerer and
// serves them from the matching Gatherer:
//
//   - radarmock_requests_total: dispatched mock requests (labels: method, route, status)
//   - radarmock_request_duration_seconds: dispatch latency (labels: method, route)
//   - radarmock_injected_failures_total: failures produced by the chaos wrapper (labels: route, status)
//   - radarmock_passthrough_total: requests forwarded to the upstream API
//   - radarmock_records: current record count per resource (label: resource)
//
// The route label is always the registered pattern ("GET /radars/:id"),
// never the raw path, so cardinality stays bounded by the route table.
//
// A nil *Collector is valid and records nothing.
package metrics
