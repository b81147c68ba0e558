package models

import "time"

// HealthRequest is the (empty) input of GET /health.
type HealthRequest struct{}

// HealthResponse is the liveness payload of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}
