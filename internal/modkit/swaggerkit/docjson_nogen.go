//go:build !swag

package swaggerkit

import "net/http"

// serveDocJSON serves an empty document, build with -tags swag for the real one
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"openapi":"3.0.3","info":{"title":"huddle API","version":"0.0.0"},"paths":{}}`))
	}
}
