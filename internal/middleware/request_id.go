// Package middleware assembles the HTTP middleware chain wrapped around the
// typed router.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pavelpascari/typedhttp/pkg/typedhttp"
)

type contextKey string

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey contextKey = "request_id"

// RequestID tags every request with a unique id for log correlation and
// echoes it in the X-Request-ID response header.
func RequestID() typedhttp.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := fmt.Sprintf("req-%d", time.Now().UnixNano())
			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RequestIDKey, id)))
		})
	}
}
