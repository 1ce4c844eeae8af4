package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/farhadzaidi/medassist/internal/ratelimit"
)

// RateLimit guards an endpoint with a per-client-IP attempt budget.
func RateLimit(limiter *ratelimit.MemoryRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(ratelimit.GetClientIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many attempts, try again later"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
