package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "huddle/internal/platform/errors"
	phttp "huddle/internal/platform/net/http"
)

func chain(h http.Handler, mws []func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestRecover_WritesPanicEnvelope(t *testing.T) {
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("nil map") }),
		Standard(Options{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rr.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	if env.Code != perr.ErrorCodePanic || env.Error != "panic recovered" || env.RequestID != "rid-9" {
		t.Fatalf("env=%+v", env)
	}
	if rr.Header().Get("X-Request-ID") != "rid-9" {
		t.Fatalf("request id header missing")
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		h := AccessLog(slow)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = io.WriteString(w, "a")
			_, _ = io.WriteString(w, "b")
		}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusAccepted || rr.Body.String() != "ab" {
			t.Fatalf("slow=%v: status=%d body=%q", slow, rr.Code, rr.Body.String())
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"https://cal.example"})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/schedule/conflicts", nil)
	req.Header.Set("Origin", "https://cal.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "https://cal.example" {
		t.Fatalf("allow origin %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}

	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("foreign origin allowed")
	}
}

func TestStandard_TimeoutOptional(t *testing.T) {
	base := len(Standard(Options{}))
	if got := len(Standard(Options{Timeout: time.Second})); got != base+1 {
		t.Fatalf("timeout not appended: %d vs %d", got, base)
	}
}
