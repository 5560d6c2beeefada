package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atria-app/web-mobile-connect/internal/logger"
)

// realIP extracts the client IP, preferring proxy headers over RemoteAddr.
func realIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware limits each client IP to maxRequests per window using
// a fixed window counter in Redis. Counting errors fail open: a broken Redis
// must not take the API down with it.
func RateLimitMiddleware(client *redis.Client, maxRequests int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:%s:%s %s", realIP(r), r.Method, r.URL.Path)

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				logger.Log.Infow("rate limit counter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				client.Expire(r.Context(), key, window)
			}

			if count > maxRequests {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error": "Too many requests"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
