package models

import "time"

// SlowRequest is the input of GET /api/slow. Delays above 10 seconds are
// rejected with a client error rather than clamped.
type SlowRequest struct {
	Delay int `query:"delay" default:"1000" validate:"min=0,max=10000"`
}

// SlowResponse is the payload of GET /api/slow.
type SlowResponse struct {
	Message   string    `json:"message"`
	DelayMs   int       `json:"delayMs"`
	Timestamp time.Time `json:"timestamp"`
}

// ComputeRequest is the input of GET /api/compute.
type ComputeRequest struct {
	Iterations int `query:"iterations" default:"1000000" validate:"min=1,max=10000000"`
}

// ComputeResponse is the payload of GET /api/compute. Result is a pure
// function of Iterations; DurationMs is wall-clock time and carries no
// determinism guarantee.
type ComputeResponse struct {
	Message    string    `json:"message"`
	Iterations int       `json:"iterations"`
	Result     float64   `json:"result"`
	DurationMs int64     `json:"durationMs"`
	Timestamp  time.Time `json:"timestamp"`
}
