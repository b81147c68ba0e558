package handlers

import (
	"context"
	"time"

	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

// HealthHandler serves GET /health, the liveness probe target. It does not
// count toward request statistics.
type HealthHandler struct {
	counter *counter.RequestCounter
}

// NewHealthHandler creates the liveness handler.
func NewHealthHandler(c *counter.RequestCounter) *HealthHandler {
	return &HealthHandler{counter: c}
}

// Handle implements the typedhttp Handler interface.
func (h *HealthHandler) Handle(ctx context.Context, req models.HealthRequest) (models.HealthResponse, error) {
	return models.HealthResponse{
		Status:    "UP",
		Uptime:    counter.FormatISODuration(h.counter.Uptime()),
		Timestamp: time.Now(),
	}, nil
}
