package idempotency

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"marketplace/internal/pkg/auth"
	"marketplace/pkg/logger"
)

const (
	Header    = "Idempotency-Key"
	keyPrefix = "idempotency:"
	lockTTL   = 30 * time.Second
)

type cachedResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
	Headers    http.Header     `json:"headers"`
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *recorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware replays the first successful response for a repeated
// Idempotency-Key. Keys are scoped to the caller, and only 2xx answers are
// stored so a declined payment can be retried under the same key.
func Middleware(log handlerLogger, client *goredis.Client, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(Header)
			if key == "" || (r.Method != http.MethodPost && r.Method != http.MethodPut) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cacheKey := keyPrefix + scope(ctx) + ":" + key

			cached, err := load(ctx, client, cacheKey)
			switch {
			case err == nil:
				replay(w, cached)
				return
			case !errors.Is(err, goredis.Nil):
				// redis down: serve without the guarantee
				log.With(logger.NewField("error", err)).Warn("idempotency lookup failed")
				next.ServeHTTP(w, r)
				return
			}

			acquired, err := client.SetNX(ctx, cacheKey+":lock", 1, lockTTL).Result()
			if err != nil {
				log.With(logger.NewField("error", err)).Warn("idempotency lock failed")
				next.ServeHTTP(w, r)
				return
			}
			if !acquired {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"message":"A request with this Idempotency-Key is in progress"}`))
				return
			}
			defer client.Del(context.WithoutCancel(ctx), cacheKey+":lock")

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status < 200 || rec.status >= 300 {
				return
			}

			data, err := json.Marshal(cachedResponse{
				StatusCode: rec.status,
				Body:       rec.body.Bytes(),
				Headers:    responseHeaders(rec.Header()),
			})
			if err == nil {
				err = client.Set(context.WithoutCancel(ctx), cacheKey, data, ttl).Err()
			}
			if err != nil {
				log.With(logger.NewField("error", err)).Error("failed to store idempotent response")
			}
		})
	}
}

func scope(ctx context.Context) string {
	if actor, ok := auth.ActorFromContext(ctx); ok {
		return actor.UserID
	}
	return "anonymous"
}

func load(ctx context.Context, client *goredis.Client, key string) (*cachedResponse, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var cached cachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func replay(w http.ResponseWriter, cached *cachedResponse) {
	for k, values := range cached.Headers {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Idempotent-Replayed", "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}

func responseHeaders(h http.Header) http.Header {
	kept := make(http.Header)
	for _, name := range []string{"Content-Type", "Location"} {
		if v := h.Values(name); len(v) > 0 {
			kept[name] = v
		}
	}
	return kept
}
