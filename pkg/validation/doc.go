// Package validation checks JSON request bodies against JSON Schema
// (draft 2020-12) documents before they are decoded into typed inputs.
//
// A Schema is compiled once and reused:
//
//	s := validation.MustCompile("address-create", addressCreateSchema)
//	in, res := validation.Decode[resource.AddressInput](s, body)
//	if !res.Valid {
//	    return res // *Result implements error
//	}
//
// Malformed JSON and schema violations are both reported through Result,
// with one FieldError per failing keyword.
package validation
