package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled JSON Schema.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile compiles a JSON Schema document. name identifies the schema in
// error messages.
func Compile(name string, doc []byte) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	url := name + ".json"
	if err := compiler.AddResource(url, bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error. It is meant for schemas
// embedded in the binary.
func MustCompile(name string, doc []byte) *Schema {
	s, err := Compile(name, doc)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks a raw JSON body. An empty body validates as an empty
// object.
func (s *Schema) Validate(body string) *Result {
	result := &Result{Valid: true}

	if strings.TrimSpace(body) == "" {
		body = "{}"
	}
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		result.AddError(&FieldError{
			Location: LocationBody,
			Code:     ErrCodeInvalidJSON,
			Message:  "Invalid JSON body",
		})
		return result
	}
	if dec.More() {
		result.AddError(&FieldError{
			Location: LocationBody,
			Code:     ErrCodeInvalidJSON,
			Message:  "Invalid JSON body",
		})
		return result
	}

	if err := s.compiled.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			parseSchemaErrors(verr, result)
		} else {
			result.AddError(&FieldError{
				Location: LocationBody,
				Code:     ErrCodeSchema,
				Message:  err.Error(),
			})
		}
	}
	return result
}

// Decode validates body against s and decodes it into T. The returned
// Result is never nil; T is the zero value when the result is invalid.
func Decode[T any](s *Schema, body string) (T, *Result) {
	var out T
	result := s.Validate(body)
	if !result.Valid {
		return out, result
	}
	if strings.TrimSpace(body) == "" {
		return out, result
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		result.AddError(&FieldError{
			Location: LocationBody,
			Code:     ErrCodeInvalidJSON,
			Message:  err.Error(),
		})
	}
	return out, result
}

// parseSchemaErrors extracts detailed errors from JSON Schema validation
func parseSchemaErrors(err *jsonschema.ValidationError, result *Result) {
	if len(err.Causes) == 0 {
		result.AddError(&FieldError{
			Field:    extractFieldFromPath(err.InstanceLocation),
			Location: LocationBody,
			Code:     ErrCodeSchema,
			Message:  err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		parseSchemaErrors(cause, result)
	}
}

// extractFieldFromPath converts a JSON Pointer to dot notation
func extractFieldFromPath(path string) string {
	if path == "" || path == "/" {
		return ""
	}
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "/", ".")
}
