package rate_limiter

import (
	"net/http"
	"strconv"

	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/pkg/logger"
)

const (
	scopeGlobal = "global"
	scopeClient = "client"
)

// Middleware puts one process-wide limiter in front of the API.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow() {
				reject(log, w, r, scopeGlobal, strconv.Itoa(rateLimiterQPS))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(log handlerLogger, w http.ResponseWriter, r *http.Request, scope, limit string) {
	route := metrics.RouteTemplate(r)

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("route", route),
		logger.NewField("remote_addr", r.RemoteAddr),
		logger.NewField("scope", scope),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, route, scope).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", limit)
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	_, err := w.Write([]byte(`{"message":"Too many requests, try again later"}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write rate limit response")
	}
}
