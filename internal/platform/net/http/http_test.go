package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "huddle/internal/platform/errors"
	"huddle/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func TestHandle_SuccessEnvelope(t *testing.T) {
	h := Handle(func(*stdhttp.Request) Response { return OK(map[string]int{"n": 3}) })

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type %q", ct)
	}
	env := decode(t, rr)
	if env.StatusCode != 200 || env.Status != "OK" || env.Error != "" {
		t.Fatalf("env=%+v", env)
	}
	if m, _ := env.Data.(map[string]any); m["n"] != float64(3) {
		t.Fatalf("data=%v", env.Data)
	}
}

func TestHandle_ErrorEnvelopeCarriesField(t *testing.T) {
	err := perr.WithField(perr.InvalidArgf("end must be after start"), "end")
	h := Handle(func(*stdhttp.Request) Response { return Error(err) })

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodPost, "/", nil))

	if rr.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status=%d", rr.Code)
	}
	env := decode(t, rr)
	if env.Code != perr.ErrorCodeInvalidArgument || env.Field != "end" || env.Error != "end must be after start" {
		t.Fatalf("env=%+v", env)
	}
	if env.Data != nil {
		t.Fatalf("error envelope has data %v", env.Data)
	}
}

func TestRespondError_EchoesRequestID(t *testing.T) {
	var h stdhttp.Handler = stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.New(perr.ErrorCodeUnavailable, "commitments unavailable"))
	})
	h = chimw.RequestID(h)

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	env := decode(t, rr)
	if rr.Code != stdhttp.StatusServiceUnavailable || env.RequestID != "rid-1" {
		t.Fatalf("status=%d env=%+v", rr.Code, env)
	}
}

type span struct {
	Start string `json:"start" validate:"required"`
}

func TestJSONHandler(t *testing.T) {
	h := JSONHandler(func(_ *stdhttp.Request, in span) (any, error) {
		if in.Start == "raw" {
			return Response{Status: stdhttp.StatusAccepted, Body: "as is"}, nil
		}
		return in.Start, nil
	})

	cases := []struct {
		body   string
		status int
	}{
		{`{"start":"2025-01-01T10:00:00"}`, stdhttp.StatusOK},
		{`{"start":"raw"}`, stdhttp.StatusAccepted},
		{`{"start":`, stdhttp.StatusBadRequest},
		{`{}`, stdhttp.StatusBadRequest},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(c.body)))
		if rr.Code != c.status {
			t.Fatalf("%s: status=%d want %d body=%s", c.body, rr.Code, c.status, rr.Body.String())
		}
	}
}

func TestNoBodyHandler_MapsError(t *testing.T) {
	h := NoBodyHandler(func(*stdhttp.Request) (any, error) { return nil, perr.JSONErrf("bad query") })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rr.Code != stdhttp.StatusBadRequest || decode(t, rr).Code != perr.ErrorCodeJSON {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRouteAndURLParam(t *testing.T) {
	m := chi.NewRouter()
	var seen string
	AdaptChi(m).Route("/users", func(r Router) {
		r.Get("/{userID}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			seen = URLParam(req, "userID")
		})
	})

	m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(stdhttp.MethodGet, "/users/42", nil))
	if seen != "42" {
		t.Fatalf("param=%q", seen)
	}
}

func TestMountProfiler(t *testing.T) {
	on := chi.NewRouter()
	MountProfiler(AdaptChi(on), "/debug", true)
	rr := httptest.NewRecorder()
	on.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/cmdline", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("enabled profiler status=%d", rr.Code)
	}

	off := chi.NewRouter()
	MountProfiler(AdaptChi(off), "/debug", false)
	rr = httptest.NewRecorder()
	off.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/cmdline", nil))
	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("disabled profiler status=%d", rr.Code)
	}
}

func TestNewServer_RoutesThroughRootMux(t *testing.T) {
	srv := NewServer(config.New())
	srv.Router().Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusNoContent) })

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/ping", nil))
	if rr.Code != stdhttp.StatusNoContent {
		t.Fatalf("status=%d", rr.Code)
	}
}
