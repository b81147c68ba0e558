package handlers

import (
	"errors"
	"net/http"

	"github.com/pavelpascari/typedhttp/pkg/typedhttp"
)

// MissingBodyError is returned by the echo handler when the request carried
// no body at all. It maps to 400 without incrementing the request counter.
type MissingBodyError struct{}

func (e *MissingBodyError) Error() string {
	return "Request body is required"
}

// InterruptedError is returned by the slow handler when the request context
// is canceled before the delay elapses. It maps to 503 without incrementing
// the request counter.
type InterruptedError struct{}

func (e *InterruptedError) Error() string {
	return "Request interrupted"
}

// errorBody is the wire shape of every resource-level error payload.
type errorBody struct {
	Error string `json:"error"`
}

// ErrorMapper maps the resource's own error types onto status codes and
// delegates everything else to the framework default.
type ErrorMapper struct {
	fallback typedhttp.DefaultErrorMapper
}

// NewErrorMapper creates the error mapper shared by all route registrations.
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError implements typedhttp.ErrorMapper.
func (m *ErrorMapper) MapError(err error) (int, interface{}) {
	var missing *MissingBodyError
	if errors.As(err, &missing) {
		return http.StatusBadRequest, errorBody{Error: missing.Error()}
	}

	var interrupted *InterruptedError
	if errors.As(err, &interrupted) {
		return http.StatusServiceUnavailable, errorBody{Error: interrupted.Error()}
	}

	// Unparseable numeric query values are the client's fault, not ours.
	if errors.Is(err, typedhttp.ErrInvalidIntegerValue) ||
		errors.Is(err, typedhttp.ErrInvalidUintegerValue) ||
		errors.Is(err, typedhttp.ErrInvalidFloatValue) {
		return http.StatusBadRequest, errorBody{Error: "Invalid numeric parameter"}
	}

	return m.fallback.MapError(err)
}
