package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	"huddle/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Options tunes Standard
type Options struct {
	// Origins allowed by CORS, empty allows any origin
	Origins []string
	// Slow is the access log warn threshold
	Slow time.Duration
	// Timeout cancels the request context, zero disables it
	Timeout time.Duration
}

// Standard is the ordered middleware slice mounted on the versioned API
func Standard(o Options) []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		chimw.RequestID,
		logContext,
		chimw.RealIP,
		Recover,
		chimw.NoCache,
		AccessLog(o.Slow),
		CORS(o.Origins),
		chimw.Compress(flate.BestSpeed),
		chimw.StripSlashes,
	}
	if o.Timeout > 0 {
		mws = append(mws, chimw.Timeout(o.Timeout))
	}
	return mws
}

// CORS allows the methods and headers the schedule API uses
func CORS(origins []string) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}

// logContext tags logger.C with the request id, mount after chimw.RequestID
func logContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chimw.GetReqID(r.Context())
		if id != "" {
			w.Header().Set("X-Request-ID", id)
			r = r.WithContext(logger.WithRequest(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
