// Package http holds the router seam, the server and the JSON envelope every endpoint answers with
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "huddle/internal/platform/errors"
)

// Envelope is the body of every JSON response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func writeEnvelope(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, env Envelope) {
	env.StatusCode = status
	env.Status = stdhttp.StatusText(status)
	env.RequestID = RequestID(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// RespondError writes err as an error envelope with its mapped status
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	wire := perr.WireFrom(err)
	writeEnvelope(w, r, perr.HTTPStatus(err), Envelope{Code: wire.Code, Error: wire.Message, Field: wire.Field})
}

// Response is what return style handlers produce
// a Body that is an error becomes an error envelope
type Response struct {
	Status int
	Body   any
}

// OK wraps data in a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error wraps err, the status comes from its code
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return style handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		if err, ok := resp.Body.(error); ok && err != nil {
			RespondError(w, r, err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		writeEnvelope(w, r, status, Envelope{Data: resp.Body})
	}
}
