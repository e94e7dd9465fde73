package chaos

import "net/http"

// Wrap draws once from src and returns either p.Content or an error envelope.
// It keeps no state between calls.
func Wrap(src RandomSource, p Params) Outcome {
	if src == nil {
		src = DefaultSource()
	}
	draw := src.IntN(100)
	if ClampRate(p.FailureRate) <= draw {
		return Outcome{Content: p.Content, Draw: draw}
	}
	return Outcome{Error: envelopeFor(p), Draw: draw}
}

func envelopeFor(p Params) *Envelope {
	code := http.StatusBadRequest
	msg := p.ErrorMessage
	if se := p.SpecificError; se != nil {
		if se.Status != 0 {
			code = se.Status
		}
		if se.Message != "" {
			msg = se.Message
		}
	}
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return NewEnvelope(code, msg)
}
