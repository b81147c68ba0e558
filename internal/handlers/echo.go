package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pavelpascari/typedhttp/pkg/typedhttp"

	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

// EchoHandler serves POST /api/echo.
type EchoHandler struct {
	counter *counter.RequestCounter
}

// NewEchoHandler creates the echo handler.
func NewEchoHandler(c *counter.RequestCounter) *EchoHandler {
	return &EchoHandler{counter: c}
}

// Handle implements the typedhttp Handler interface. A nil message means the
// request carried no body; that path returns an error without counting the
// request. Length counts Unicode code points so multi-byte characters count
// as one.
func (h *EchoHandler) Handle(ctx context.Context, req models.EchoRequest) (models.EchoResponse, error) {
	if req.Message == nil {
		return models.EchoResponse{}, &MissingBodyError{}
	}

	h.counter.Increment()

	return models.EchoResponse{
		Echo:      *req.Message,
		Length:    utf8.RuneCountInString(*req.Message),
		Timestamp: time.Now(),
	}, nil
}

// EchoDecoder decodes the optional JSON body of POST /api/echo.
//
// The stock JSON decoder treats an absent body as malformed input, but the
// echo contract tells "no body at all" (handled by the resource itself)
// apart from "body present but invalid" (a boundary validation failure).
// An absent, empty, or JSON-null body therefore decodes into a request with
// a nil Message and no error.
type EchoDecoder struct {
	validator *validator.Validate
}

// NewEchoDecoder creates the echo body decoder.
func NewEchoDecoder(v *validator.Validate) *EchoDecoder {
	return &EchoDecoder{validator: v}
}

// Decode implements typedhttp.RequestDecoder.
func (d *EchoDecoder) Decode(r *http.Request) (models.EchoRequest, error) {
	var req models.EchoRequest

	if r.Body == nil {
		return req, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return req, fmt.Errorf("reading request body: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, nil
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("invalid JSON: %w", err)
	}

	if d.validator != nil {
		if err := d.validator.Struct(req); err != nil {
			fields := make(map[string]string)
			var validatorErrs validator.ValidationErrors
			if errors.As(err, &validatorErrs) {
				for _, validatorErr := range validatorErrs {
					fields[strings.ToLower(validatorErr.Field())] = validatorErr.Tag()
				}
			}

			return req, typedhttp.NewValidationError("Validation failed", fields)
		}
	}

	return req, nil
}

// ContentTypes implements typedhttp.RequestDecoder.
func (d *EchoDecoder) ContentTypes() []string {
	return []string{"application/json"}
}
