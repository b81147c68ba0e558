package handlers

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/pavelpascari/typedhttp/pkg/typedhttp"

	"github.com/libertybench/sampleapp/internal/counter"
	"github.com/libertybench/sampleapp/internal/models"
)

// InfoHandler serves GET /api/info, a debug endpoint exposing runtime
// details. It is gated by the debug config flag; when disabled it answers
// not-found without touching runtime introspection.
type InfoHandler struct {
	counter      *counter.RequestCounter
	enabled      bool
	processStart time.Time
}

// NewInfoHandler creates the runtime info handler.
func NewInfoHandler(c *counter.RequestCounter, enabled bool) *InfoHandler {
	return &InfoHandler{
		counter:      c,
		enabled:      enabled,
		processStart: time.Now(),
	}
}

// Handle implements the typedhttp Handler interface.
func (h *InfoHandler) Handle(ctx context.Context, req models.InfoRequest) (models.InfoResponse, error) {
	if !h.enabled {
		return models.InfoResponse{}, &typedhttp.NotFoundError{Message: "Debug endpoints are disabled"}
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return models.InfoResponse{
		Hostname:            hostname,
		RuntimeVersion:      runtime.Version(),
		RuntimeVendor:       runtime.Compiler,
		OSName:              runtime.GOOS,
		OSArch:              runtime.GOARCH,
		AvailableProcessors: runtime.NumCPU(),
		HeapMemoryUsed:      mem.HeapAlloc,
		HeapMemoryMax:       mem.HeapSys,
		Uptime:              counter.FormatISODuration(time.Since(h.processStart)),
		RequestCount:        h.counter.Total(),
		AppUptime:           counter.FormatISODuration(h.counter.Uptime()),
	}, nil
}
