// Package middleware builds the request pipeline every API route runs through
package middleware

import (
	"net/http"
	"time"

	"huddle/internal/platform/logger"
)

type statusWriter struct {
	http.ResponseWriter
	status int
	n      int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.n += n
	return n, err
}

// AccessLog writes one line per request, at warn level once it took slow or longer
// slow <= 0 keeps everything at info
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			took := time.Since(start)

			log := logger.C(r.Context())
			evt := log.Info()
			if slow > 0 && took >= slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.n).
				Dur("took", took).
				Msg("request")
		})
	}
}
