// Package engine provides the mock route engine: the route registry, the
// dispatcher that runs matched handlers through the failure-injection
// wrapper, and the net/http adapter and server that expose it.
//
// A logical request can be resolved without any socket:
//
//	reg := engine.NewRegistry(engine.DefaultNamespace)
//	_ = api.Register(reg, resource.New(st), api.Options{})
//	e := engine.New(reg, engine.WithStore(st))
//	resp, ok := e.Dispatch(ctx, engine.NewRequest("GET", "/api/radars/CAM001", ""))
//
// Dispatch returns ok == false when no enabled route matches; the HTTP
// Handler then forwards the request to the configured upstream.
//
// Requests are dispatched one at a time. The store behind the handlers is
// therefore never accessed concurrently, even when the HTTP server is.
package engine
