package router

import (
	"net/http"

	"github.com/pavelpascari/typedhttp/pkg/typedhttp"
)

// fixedStatusEncoder writes JSON with a fixed status code instead of the
// verb-derived default. The echo and reset endpoints are POST but do not
// create resources, so they answer 200 rather than 201.
type fixedStatusEncoder[T any] struct {
	inner  *typedhttp.JSONEncoder[T]
	status int
}

func newOKEncoder[T any]() *fixedStatusEncoder[T] {
	return &fixedStatusEncoder[T]{
		inner:  typedhttp.NewJSONEncoder[T](),
		status: http.StatusOK,
	}
}

// Encode implements typedhttp.ResponseEncoder.
func (e *fixedStatusEncoder[T]) Encode(w http.ResponseWriter, data T, _ int) error {
	return e.inner.Encode(w, data, e.status)
}

// ContentType implements typedhttp.ResponseEncoder.
func (e *fixedStatusEncoder[T]) ContentType() string {
	return e.inner.ContentType()
}
