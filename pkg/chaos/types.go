package chaos

import (
	"fmt"
	"math/rand/v2"
	"net/http"
)

const (
	// DefaultErrorMessage is used when a call sets no ErrorMessage.
	DefaultErrorMessage = "Request error"

	// AdditionalInfo fills the additionalInfo field of every envelope.
	AdditionalInfo = "Additional context details"

	// Never is the failure rate of a call that cannot fail.
	Never = 0

	// Always is the failure rate of a deterministic business error.
	Always = 100
)

// SpecificError is a situation-specific failure chosen by the handler.
type SpecificError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Params are the inputs of a single wrapped call.
type Params struct {
	// Content is returned on success. It may be nil.
	Content any

	// ErrorMessage keys the generic failure envelope.
	ErrorMessage string

	// SpecificError, when set, replaces the generic failure.
	SpecificError *SpecificError

	// FailureRate is the failure probability in percent, clamped to [0, 100].
	FailureRate int
}

// ErrorContext is the context block of an Envelope.
type ErrorContext struct {
	Message        string `json:"message"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Envelope is the error payload returned by every failed call.
// The HTTP status equals Code.
type Envelope struct {
	Code    int          `json:"code"`
	Key     string       `json:"key"`
	Context ErrorContext `json:"context"`
}

// NewEnvelope builds an envelope whose key and message are both message.
func NewEnvelope(code int, message string) *Envelope {
	return &Envelope{
		Code: code,
		Key:  message,
		Context: ErrorContext{
			Message:        message,
			AdditionalInfo: AdditionalInfo,
		},
	}
}

func (e *Envelope) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Key)
}

// Outcome is the result of a wrapped call: either Content or Error.
type Outcome struct {
	Content any
	Error   *Envelope

	// Draw is the random value the decision was taken against.
	Draw int
}

// Failed reports whether the call produced an error envelope.
func (o Outcome) Failed() bool {
	return o.Error != nil
}

// Status returns the HTTP status of the outcome, using success for
// successful calls.
func (o Outcome) Status(success int) int {
	if o.Error != nil {
		return o.Error.Code
	}
	if success == 0 {
		return http.StatusOK
	}
	return success
}

// Body returns the value to encode as the response payload.
func (o Outcome) Body() any {
	if o.Error != nil {
		return o.Error
	}
	return o.Content
}

// RandomSource yields uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// RandomSourceFunc adapts a function to RandomSource.
type RandomSourceFunc func(n int) int

// IntN calls f(n).
func (f RandomSourceFunc) IntN(n int) int {
	return f(n)
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns the process-wide source, safe for concurrent use.
func DefaultSource() RandomSource {
	return globalSource{}
}

// Sequence returns a source that replays draws in order and repeats the
// last one once exhausted. Draws are reduced modulo n. It is meant for
// tests and deterministic CLI runs and is not safe for concurrent use.
func Sequence(draws ...int) RandomSource {
	i := 0
	return RandomSourceFunc(func(n int) int {
		if len(draws) == 0 {
			return 0
		}
		d := draws[min(i, len(draws)-1)]
		i++
		return ((d % n) + n) % n
	})
}

// ClampRate limits a failure rate to [Never, Always].
func ClampRate(rate int) int {
	return min(max(rate, Never), Always)
}
