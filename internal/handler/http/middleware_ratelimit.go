package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"showshelf/internal/logger"
	"showshelf/internal/utils"
	"showshelf/models"
)

// ipRateLimiter applies a per-client-address token bucket. Entries idle for
// longer than idleTTL are dropped on the next sweep.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiterEntry

	rateLimit rate.Limit
	burst     int

	lastSweep time.Time
}

type ipLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

const idleTTL = 10 * time.Minute

// newIPRateLimiter creates a limiter allowing requestsPerMinute requests
// per client address, with a burst of the same size.
func newIPRateLimiter(requestsPerMinute int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters:  make(map[string]*ipLimiterEntry),
		rateLimit: rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:     requestsPerMinute,
		lastSweep: time.Now(),
	}
}

func (l *ipRateLimiter) allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > idleTTL {
		for key, entry := range l.limiters {
			if now.Sub(entry.lastAccess) > idleTTL {
				delete(l.limiters, key)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.limiters[addr]
	if !ok {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(l.rateLimit, l.burst)}
		l.limiters[addr] = entry
	}
	entry.lastAccess = now

	return entry.limiter.Allow()
}

func (l *ipRateLimiter) limit429(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("remote_addr", r.RemoteAddr).
		Msg("registration rate limit exceeded")
	utils.WriteJSON(w, models.ErrorResponse{Message: "Too many requests. Please try again later."}, http.StatusTooManyRequests)
}

func (l *ipRateLimiter) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			addr = r.RemoteAddr
		}

		if !l.allow(addr) {
			l.limit429(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
