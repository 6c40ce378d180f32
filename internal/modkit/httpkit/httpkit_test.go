package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "huddle/internal/platform/errors"
	phttp "huddle/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type ping struct {
	Msg string `json:"msg" validate:"required"`
}

func newMux() http.Handler {
	mux := chi.NewRouter()
	MountAPIV1(phttp.AdaptChi(mux), CommonStack(), func(api Router) {
		PostJSON(api, "/echo", func(_ *http.Request, in ping) (any, error) { return in.Msg, nil })
		Get(api, "/users/{id}", func(r *http.Request) (any, error) {
			if URLParam(r, "id") == "0" {
				return nil, perr.InvalidArgf("no such user")
			}
			return URLParam(r, "id"), nil
		})
		api.Get("/raw", func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, r, perr.JSONErrf("bad window"))
		})
	})
	return mux
}

func call(h http.Handler, method, path, body string) (int, Envelope) {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
	var env Envelope
	_ = json.Unmarshal(rr.Body.Bytes(), &env)
	return rr.Code, env
}

func TestRoutesUnderV1(t *testing.T) {
	h := newMux()

	if code, env := call(h, http.MethodPost, "/api/v1/echo", `{"msg":"hi"}`); code != 200 || env.Data != "hi" {
		t.Fatalf("echo: %d %+v", code, env)
	}
	if code, env := call(h, http.MethodPost, "/api/v1/echo", `{}`); code != 400 || env.Field != "msg" {
		t.Fatalf("echo validation: %d %+v", code, env)
	}
	if code, env := call(h, http.MethodGet, "/api/v1/users/7", ""); code != 200 || env.Data != "7" || env.RequestID == "" {
		t.Fatalf("get: %d %+v", code, env)
	}
	if code, _ := call(h, http.MethodGet, "/api/v1/users/0", ""); code != http.StatusUnprocessableEntity {
		t.Fatalf("get error: %d", code)
	}
	if code, env := call(h, http.MethodGet, "/api/v1/raw", ""); code != 400 || env.Code != perr.ErrorCodeJSON {
		t.Fatalf("raw: %d %+v", code, env)
	}
	if code, _ := call(h, http.MethodGet, "/echo", ""); code != http.StatusNotFound {
		t.Fatalf("unversioned path should 404, got %d", code)
	}
}
