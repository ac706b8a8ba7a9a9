package api

import (
	"encoding/json/v2"
	"log/slog"
	"net"
	"net/http"

	"github.com/npaulus/kanban-server/internal/ratelimit"
)

// rateLimitMiddleware rejects requests from clients that exceed their
// per-address allowance with 429. The RealIP middleware runs earlier, so
// RemoteAddr already reflects X-Forwarded-For when present.
func rateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}

			if !limiter.Allow(key) {
				if logger != nil {
					logger.Warn("Rate limit exceeded", "client", key, "path", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				body, _ := json.Marshal(map[string]string{
					"code":    "RATE_LIMITED",
					"message": "too many requests",
				})
				_, _ = w.Write(body)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
