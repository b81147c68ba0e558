package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pavelpascari/typedhttp/pkg/middleware/observability"
	"github.com/pavelpascari/typedhttp/pkg/middleware/recovery"
	"github.com/pavelpascari/typedhttp/pkg/typedhttp"

	"github.com/libertybench/sampleapp/internal/config"
)

// Stack builds the global middleware chain in execution order: request id,
// structured logging, panic recovery, then the optional rate limiter closest
// to the handlers.
func Stack(cfg *config.Config, logger *slog.Logger) []typedhttp.Middleware {
	logging := observability.NewLoggingMiddleware(logger)
	panics := recovery.NewPanicRecoveryMiddleware()

	mws := []typedhttp.Middleware{
		RequestID(),
		logging.HTTPMiddleware(),
		panics.HTTPMiddleware(),
	}

	if cfg.RateLimit.Enabled {
		mws = append(mws, RateLimit(cfg.RateLimit))
	}

	return mws
}

// Apply wraps h so the first middleware in the slice is the outermost.
func Apply(h http.Handler, mws []typedhttp.Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}
