package resource

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError is returned when no record has the requested id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// ConflictError is returned when a unique key is already taken.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
	Message  string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s %q already exists", e.Resource, e.Field, e.Value)
}

// StatusCode returns the HTTP status code for this error. Duplicates are
// reported as bad requests, matching the real backend.
func (e *ConflictError) StatusCode() int {
	return http.StatusBadRequest
}

// ValidationError is returned when input fails a business rule.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// StatusCoder is implemented by every error type of this package.
type StatusCoder interface {
	error
	StatusCode() int
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not a
// typed resource error.
func StatusOf(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

func notFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}
