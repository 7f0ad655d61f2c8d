package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger checks connectivity to the backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const storePingTimeout = 2 * time.Second

// StoreReady refuses data routes while the backing store is unreachable,
// so a degraded process answers 503 instead of surfacing driver errors.
func StoreReady(store Pinger, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), storePingTimeout)
			defer cancel()

			if err := store.PingContext(ctx); err != nil {
				logger.Error("store unreachable", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusServiceUnavailable, "store_unavailable", "database not connected")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
