package rate_limiter

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per remote address. It guards the
// login route against password guessing.
type ClientLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

func NewClientLimiter(perSecond float64, burst int, idleTTL time.Duration) *ClientLimiter {
	return &ClientLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (c *ClientLimiter) Allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	v, ok := c.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(c.rate, c.burst)}
		c.visitors[key] = v
		TrackedClients.Set(float64(len(c.visitors)))
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Sweep drops clients idle for longer than the TTL.
func (c *ClientLimiter) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.idleTTL)
	removed := 0
	for key, v := range c.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(c.visitors, key)
			removed++
		}
	}
	TrackedClients.Set(float64(len(c.visitors)))
	return removed
}

func PerClientMiddleware(log handlerLogger, limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				reject(log, w, r, scopeClient, strconv.Itoa(limiter.burst))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
