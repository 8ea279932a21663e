package middlewares

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/unrolled/render"
)

// RateLimiter allows limit requests per client IP per period, counted in
// Redis. A nil client disables limiting.
func RateLimiter(client *redis.Client, rd *render.Render, limit int64, period time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := "rate_limit:" + clientIP(r)
			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				log.Printf("RateLimiter: redis unavailable, letting request through: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(r.Context(), key, period).Err(); err != nil {
					// without a TTL the counter would never reset
					log.Printf("RateLimiter: failed to set window on %s, dropping it: %v", key, err)
					client.Del(r.Context(), key)
				}
			}

			if count > limit {
				rd.JSON(w, http.StatusTooManyRequests, map[string]string{
					"error":   "Too many requests",
					"message": "rate limit exceeded, try again later",
				})
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
