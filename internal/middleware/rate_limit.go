package middleware

import (
	"net/http"

	tollbooth "github.com/didip/tollbooth/v7"
	"github.com/pavelpascari/typedhttp/pkg/typedhttp"

	"github.com/libertybench/sampleapp/internal/config"
)

// RateLimit returns a per-client request limiter. Rejected requests answer
// 429 with the same JSON error shape the resource uses elsewhere.
func RateLimit(cfg config.RateLimitConfig) typedhttp.Middleware {
	lmt := tollbooth.NewLimiter(cfg.RequestsPerSecond, nil)
	lmt.SetMessageContentType("application/json")
	lmt.SetMessage(`{"error": "Too many requests"}`)

	return func(next http.Handler) http.Handler {
		return tollbooth.LimitHandler(lmt, next)
	}
}
