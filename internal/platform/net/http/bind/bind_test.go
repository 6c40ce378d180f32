package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "huddle/internal/platform/errors"
)

type window struct {
	UserIDs  []string `json:"user_ids" validate:"required,min=1,max=3"`
	Start    string   `json:"start" validate:"required,instant"`
	Duration int      `json:"duration_minutes" validate:"min=1"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	got, err := ParseJSON[window](post(`{"user_ids":["1"],"start":"2025-01-01T09:00:00","duration_minutes":30}`))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Start != "2025-01-01T09:00:00" || got.Duration != 30 || len(got.UserIDs) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_DecodeFailures(t *testing.T) {
	for _, body := range []string{
		``,
		`{"user_ids":`,
		`{"user_ids":["1"],"start":"2025-01-01T09:00:00","duration_minutes":30,"extra":1}`,
		`{"user_ids":["1"],"start":"2025-01-01T09:00:00","duration_minutes":30} {"again":1}`,
	} {
		_, err := ParseJSON[window](post(body))
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			t.Fatalf("%q: want json error, got %v", body, err)
		}
	}
}

func TestParseJSON_ValidationNamesJSONField(t *testing.T) {
	cases := []struct {
		body  string
		field string
		msg   string
	}{
		{`{"user_ids":[],"start":"2025-01-01T09:00:00","duration_minutes":30}`, "user_ids", "at least"},
		{`{"user_ids":["1","2","3","4"],"start":"2025-01-01T09:00:00","duration_minutes":30}`, "user_ids", "at most"},
		{`{"user_ids":["1"],"start":"tomorrow","duration_minutes":30}`, "start", "datetime like"},
		{`{"user_ids":["1"],"start":"2025-01-01T09:00:00","duration_minutes":0}`, "duration_minutes", "at least 1"},
	}
	for _, c := range cases {
		_, err := ParseJSON[window](post(c.body))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("%s: want validation error, got %v", c.body, err)
		}
		w := perr.WireFrom(err)
		if w.Field != c.field || !strings.Contains(w.Message, c.msg) {
			t.Fatalf("%s: wire=%+v", c.body, w)
		}
	}
}

func TestParseJSON_BodyLimit(t *testing.T) {
	big := `{"user_ids":["` + strings.Repeat("x", maxBody) + `"]}`
	if _, err := ParseJSON[window](post(big)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("oversized body should be a json error, got %v", err)
	}
}
