// Package counter owns the shared request-count state behind the stats
// endpoints. A single RequestCounter instance is injected into every handler;
// all mutations go through atomic primitives so concurrent requests never
// lose an update and a reset never races an increment.
package counter

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// RequestCounter tracks the total number of handled requests and the moment
// the application started serving.
type RequestCounter struct {
	total atomic.Uint64
	start time.Time
}

// New creates a counter with the start time captured now.
func New() *RequestCounter {
	return NewAt(time.Now())
}

// NewAt creates a counter with an explicit start time. Tests use this to get
// a deterministic uptime baseline.
func NewAt(start time.Time) *RequestCounter {
	return &RequestCounter{start: start}
}

// Increment records one handled request and returns the new total.
func (c *RequestCounter) Increment() uint64 {
	return c.total.Add(1)
}

// Total returns the current request count.
func (c *RequestCounter) Total() uint64 {
	return c.total.Load()
}

// Reset sets the counter back to zero and returns the value it held
// immediately before the reset, in one indivisible swap.
func (c *RequestCounter) Reset() uint64 {
	return c.total.Swap(0)
}

// StartTime returns the timestamp captured when the counter was created.
func (c *RequestCounter) StartTime() time.Time {
	return c.start
}

// Uptime returns the elapsed time since the counter was created.
func (c *RequestCounter) Uptime() time.Duration {
	return time.Since(c.start)
}

// FormatISODuration renders d in the ISO-8601 duration shape used by the
// stats and info payloads, e.g. "PT1H2M3.5S". Durations at or below zero
// render as "PT0S".
func FormatISODuration(d time.Duration) string {
	if d <= 0 {
		return "PT0S"
	}

	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := d.Seconds()

	var b strings.Builder
	b.WriteString("PT")
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if seconds > 0 || (hours == 0 && minutes == 0) {
		b.WriteString(strconv.FormatFloat(seconds, 'f', -1, 64))
		b.WriteString("S")
	}

	return b.String()
}
