package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed within a
// fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

type fixedWindow struct {
	windowStart time.Time
	count       int
}

// LocalLimiter is an in-process fixed-window limiter for deployments
// without redis.
type LocalLimiter struct {
	mu      sync.Mutex
	buckets map[string]*fixedWindow
}

// NewLocalLimiter creates an in-process limiter.
func NewLocalLimiter() *LocalLimiter {
	return &LocalLimiter{buckets: make(map[string]*fixedWindow)}
}

func (l *LocalLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	bucket, ok := l.buckets[key]
	if !ok || now.Sub(bucket.windowStart) >= window {
		l.buckets[key] = &fixedWindow{windowStart: now, count: 1}
		return true, 0, nil
	}

	if bucket.count >= limit {
		return false, bucket.windowStart.Add(window).Sub(now), nil
	}

	bucket.count++
	return true, 0, nil
}

// RateLimit gates requests per client IP through the limiter. A limiter
// backend failure fails open: an unreachable redis must not lock members
// out of login.
func RateLimit(limiter Limiter, limit int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, retryAfter, err := limiter.Allow(r.Context(), key, limit, window)
			if err != nil {
				logger.Warn("rate limiter backend unavailable, allowing request",
					"key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
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
