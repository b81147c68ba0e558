// Package handlers implements the business logic behind every API
// operation. Each handler holds the shared request counter and implements
// the typedhttp Handler interface for its request/response pair.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

// Greeting is the static message returned by GET /api/hello. The literal is
// part of the wire contract carried over from the original workload.
const Greeting = "Hello from Liberty!"

// GreetHandler serves GET /api/hello.
type GreetHandler struct {
	counter *counter.RequestCounter
}

// NewGreetHandler creates the static greeting handler.
func NewGreetHandler(c *counter.RequestCounter) *GreetHandler {
	return &GreetHandler{counter: c}
}

// Handle implements the typedhttp Handler interface.
func (h *GreetHandler) Handle(ctx context.Context, req models.GreetRequest) (models.GreetResponse, error) {
	h.counter.Increment()

	return models.GreetResponse{
		Message:   Greeting,
		Timestamp: time.Now(),
	}, nil
}

// GreetNameHandler serves GET /api/hello/{name}.
type GreetNameHandler struct {
	counter *counter.RequestCounter
}

// NewGreetNameHandler creates the personalized greeting handler.
func NewGreetNameHandler(c *counter.RequestCounter) *GreetNameHandler {
	return &GreetNameHandler{counter: c}
}

// Handle implements the typedhttp Handler interface. The name arrives
// already validated and is formatted verbatim so unicode and punctuation
// survive untouched.
func (h *GreetNameHandler) Handle(ctx context.Context, req models.GreetNameRequest) (models.GreetNameResponse, error) {
	h.counter.Increment()

	return models.GreetNameResponse{
		Message:   fmt.Sprintf("Hello, %s!", req.Name),
		Timestamp: time.Now(),
	}, nil
}
