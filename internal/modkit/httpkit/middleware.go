package httpkit

import (
	"net/http"
	"time"

	"huddle/internal/platform/net/middleware"
)

// CommonStack is the middleware every versioned route runs behind
// origins restricts CORS, none allows any origin
func CommonStack(origins ...string) []func(http.Handler) http.Handler {
	return middleware.Standard(middleware.Options{
		Origins: origins,
		Slow:    500 * time.Millisecond,
		Timeout: 30 * time.Second,
	})
}
