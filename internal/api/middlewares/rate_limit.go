package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// RateLimit caps requests per client IP per minute. A zero limit disables it.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteError(w, "too many requests, please try again shortly", http.StatusTooManyRequests)
		}),
	)
}
