package handlers

import (
	"context"
	"time"

	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

// StatsHandler serves GET /api/stats. It is read-only and does not count
// itself.
type StatsHandler struct {
	counter *counter.RequestCounter
}

// NewStatsHandler creates the statistics handler.
func NewStatsHandler(c *counter.RequestCounter) *StatsHandler {
	return &StatsHandler{counter: c}
}

// Handle implements the typedhttp Handler interface.
func (h *StatsHandler) Handle(ctx context.Context, req models.StatsRequest) (models.StatsResponse, error) {
	return models.StatsResponse{
		TotalRequests: h.counter.Total(),
		AppUptime:     counter.FormatISODuration(h.counter.Uptime()),
		StartTime:     h.counter.StartTime(),
		CurrentTime:   time.Now(),
	}, nil
}

// ResetStatsHandler serves POST /api/stats/reset.
type ResetStatsHandler struct {
	counter *counter.RequestCounter
}

// NewResetStatsHandler creates the statistics reset handler.
func NewResetStatsHandler(c *counter.RequestCounter) *ResetStatsHandler {
	return &ResetStatsHandler{counter: c}
}

// Handle implements the typedhttp Handler interface. The reset is a single
// atomic swap, so the reported previous count is exactly what was zeroed.
// The admin key is parsed but not enforced.
func (h *ResetStatsHandler) Handle(ctx context.Context, req models.ResetStatsRequest) (models.ResetStatsResponse, error) {
	previous := h.counter.Reset()

	return models.ResetStatsResponse{
		Message:              "Statistics reset",
		PreviousRequestCount: previous,
	}, nil
}
