package models

import "time"

// StatsRequest is the (empty) input of GET /api/stats.
type StatsRequest struct{}

// StatsResponse is the payload of GET /api/stats. AppUptime uses the
// ISO-8601 duration shape, e.g. "PT5M30S".
type StatsResponse struct {
	TotalRequests uint64    `json:"totalRequests"`
	AppUptime     string    `json:"appUptime"`
	StartTime     time.Time `json:"startTime"`
	CurrentTime   time.Time `json:"currentTime"`
}

// ResetStatsRequest is the input of POST /api/stats/reset. The admin key is
// accepted for wire compatibility but not enforced.
type ResetStatsRequest struct {
	AdminKey string `header:"X-Admin-Key"`
}

// ResetStatsResponse is the payload of POST /api/stats/reset.
type ResetStatsResponse struct {
	Message              string `json:"message"`
	PreviousRequestCount uint64 `json:"previousRequestCount"`
}
