package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const retryAfter = 5 * time.Second

// Middleware turns new requests away once shutdown has begun. Requests that
// arrived earlier keep running on ongoingCtx until the server drains.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"message":"Service is shutting down"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
