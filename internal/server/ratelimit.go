package server

import (
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/osse101/MindQuest_Go/internal/logger"
	"github.com/osse101/MindQuest_Go/internal/metrics"
)

// RateLimiter hands out one token bucket per client IP.
// The least recently seen IPs are evicted once the cache is full.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
	mu       sync.Mutex
}

// NewRateLimiter creates a per-IP limiter allowing rps requests per second with the given burst
func NewRateLimiter(rps float64, burst int) (*RateLimiter, error) {
	cache, err := lru.New[string, *rate.Limiter](RateLimiterCacheSize)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: cache,
	}, nil
}

// Allow reports whether the IP may make another request now
func (l *RateLimiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

func (l *RateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters.Get(ip); ok {
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(ip, lim)
	return lim
}

// RateLimitMiddleware rejects clients that exceed their token bucket with 429
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, trustedProxies)
			if !limiter.Allow(ip) {
				metrics.HTTPRateLimited.Inc()
				logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
