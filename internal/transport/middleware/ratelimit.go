package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// idleClientTTL is how long an unused client limiter survives cleanup.
const idleClientTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	clients  sync.Map // map[string]*client
	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a rate limiter that drops idle clients every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call more
// than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows each client IP a burst of maxPerMinute requests, refilled
// evenly over a minute. Connections from one host share a bucket regardless
// of port. Rejected requests get 429 with Retry-After in whole seconds.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := rate.Every(time.Minute / time.Duration(maxPerMinute))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			c := rl.client(clientIP(r), every, maxPerMinute, now)

			res := c.limiter.ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, r, http.StatusTooManyRequests, codeRateLimited, "rate limit exceeded")
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

func (rl *RateLimiter) client(ip string, every rate.Limit, burst int, now time.Time) *client {
	v, ok := rl.clients.Load(ip)
	if !ok {
		v, _ = rl.clients.LoadOrStore(ip, &client{limiter: rate.NewLimiter(every, burst)})
	}
	c := v.(*client)
	c.lastSeen.Store(now.UnixNano())
	return c
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			cutoff := now.Add(-idleClientTTL).UnixNano()
			rl.clients.Range(func(key, value any) bool {
				if value.(*client).lastSeen.Load() < cutoff {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
