package api

import (
	"errors"
	"strconv"

	"github.com/sqlutions-fatec/radarmock/pkg/chaos"
	"github.com/sqlutions-fatec/radarmock/pkg/engine"
	"github.com/sqlutions-fatec/radarmock/pkg/resource"
	"github.com/sqlutions-fatec/radarmock/pkg/validation"
)

// success wraps content with the route's generic failure policy.
func success(content any, msg string, rate int) engine.Reply {
	return engine.Reply{Params: chaos.Params{
		Content:      content,
		ErrorMessage: msg,
		FailureRate:  rate,
	}}
}

// result converts an engine result. Typed resource errors become a
// specific error that always fires; any other error is returned as is.
func result(content any, err error, msg string, rate int) (engine.Reply, error) {
	if err == nil {
		return success(content, msg, rate), nil
	}
	var sc resource.StatusCoder
	if !errors.As(err, &sc) {
		return engine.Reply{}, err
	}
	return engine.Reply{Params: chaos.Params{
		ErrorMessage:  msg,
		SpecificError: &chaos.SpecificError{Status: sc.StatusCode(), Message: sc.Error()},
		FailureRate:   chaos.Always,
	}}, nil
}

// decode validates a request body against s and decodes it.
func decode[T any](s *validation.Schema, body string) (T, error) {
	v, res := validation.Decode[T](s, body)
	if !res.Valid {
		return v, &resource.ValidationError{Message: res.Error()}
	}
	return v, nil
}

// intID parses a numeric path id. Ids that are not numbers name no record.
func intID(req *engine.Request, name string) (int, error) {
	raw := req.Params["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &resource.NotFoundError{Resource: name, ID: raw}
	}
	return id, nil
}
