// Package chaos decides, per call, whether a mock response succeeds with its
// content or fails with a synthetic error envelope.
//
// The decision is a pure function of the call parameters and one draw from
// a RandomSource:
//
//	out := chaos.Wrap(chaos.DefaultSource(), chaos.Params{
//	    Content:      list,
//	    ErrorMessage: "Error fetching radars",
//	    FailureRate:  10, // percent
//	})
//
// A uniform integer in [0, 100) is drawn and the call fails when FailureRate
// is strictly greater than the draw, so a rate of 0 never fails and a rate
// of 100 always does. Handlers encode deterministic business errors (not
// found, validation, conflicts) as a SpecificError with rate Always.
//
// # Injector
//
// Injector layers runtime controls over Wrap: a global switch that
// suppresses simulated failures, per-route rate overrides keyed by
// "METHOD /pattern" globs, and statistics.
//
//	chaos:
//	  enabled: true
//	  failureRates:
//	    "GET /registers": 50
//	    "* /users/**": 0
package chaos
