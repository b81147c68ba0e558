package handlers

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

// SlowHandler serves GET /api/slow, a simulated-latency endpoint for load
// testing.
type SlowHandler struct {
	counter *counter.RequestCounter
}

// NewSlowHandler creates the simulated-latency handler.
func NewSlowHandler(c *counter.RequestCounter) *SlowHandler {
	return &SlowHandler{counter: c}
}

// Handle implements the typedhttp Handler interface. The wait is cancelable:
// if the request context is done before the delay elapses, the handler
// returns an InterruptedError and the request is not counted.
func (h *SlowHandler) Handle(ctx context.Context, req models.SlowRequest) (models.SlowResponse, error) {
	timer := time.NewTimer(time.Duration(req.Delay) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return models.SlowResponse{}, &InterruptedError{}
	}

	h.counter.Increment()

	return models.SlowResponse{
		Message:   fmt.Sprintf("Completed after %dms delay", req.Delay),
		DelayMs:   req.Delay,
		Timestamp: time.Now(),
	}, nil
}

// ComputeHandler serves GET /api/compute, a simulated-CPU-load endpoint.
type ComputeHandler struct {
	counter *counter.RequestCounter
}

// NewComputeHandler creates the simulated-compute handler.
func NewComputeHandler(c *counter.RequestCounter) *ComputeHandler {
	return &ComputeHandler{counter: c}
}

// Handle implements the typedhttp Handler interface. The accumulation is a
// pure function of the iteration count: same input, bit-identical result.
func (h *ComputeHandler) Handle(ctx context.Context, req models.ComputeRequest) (models.ComputeResponse, error) {
	start := time.Now()

	result := 0.0
	for i := 1; i <= req.Iterations; i++ {
		result += math.Sqrt(float64(i)) * math.Sin(float64(i))
	}

	elapsed := time.Since(start)

	h.counter.Increment()

	return models.ComputeResponse{
		Message:    "Computation complete",
		Iterations: req.Iterations,
		Result:     result,
		DurationMs: elapsed.Milliseconds(),
		Timestamp:  time.Now(),
	}, nil
}
