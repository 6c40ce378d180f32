// Package httpkit is what modules import to register routes
// it keeps them off the platform http package and chi
package httpkit

import (
	"net/http"

	phttp "huddle/internal/platform/net/http"
)

type (
	// Envelope is the JSON body every route answers with
	Envelope = phttp.Envelope
	// Handler is a plain handler func
	Handler = phttp.Handler
	// Router is the routing seam
	Router = phttp.Router
)

// PostJSON decodes and validates a T, fn's result is wrapped in an envelope
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(fn))
}

// Get registers a handler that reads only the URL
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, phttp.NoBodyHandler(fn))
}

// URLParam returns a path parameter captured by the router
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// WriteError writes err as an error envelope, for handlers that stream raw bodies
func WriteError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }
