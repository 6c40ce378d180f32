package recurrence

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustTime(t *testing.T, got time.Time, want string) {
	t.Helper()
	if !got.Equal(at(want)) {
		t.Fatalf("got %s, want %s", got.Format("2006-01-02T15:04"), want)
	}
}

func TestParseRule(t *testing.T) {
	cases := map[string]Rule{
		"":         None,
		"none":     None,
		"Daily":    Daily,
		" weekly ": Weekly,
		"MONTHLY":  Monthly,
		"yearly":   Yearly,
	}
	for in, want := range cases {
		got, err := ParseRule(in)
		if err != nil || got != want {
			t.Fatalf("ParseRule(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseRule("fortnightly"); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("want ErrUnknownRule, got %v", err)
	}
}

func TestRuleText(t *testing.T) {
	b, err := json.Marshal(struct {
		R Rule `json:"r"`
	}{Monthly})
	if err != nil || string(b) != `{"r":"monthly"}` {
		t.Fatalf("marshal = %s, %v", b, err)
	}

	var in struct {
		R Rule `json:"r"`
	}
	if err := json.Unmarshal([]byte(`{"r":"Weekly"}`), &in); err != nil || in.R != Weekly {
		t.Fatalf("unmarshal = %v, %v", in.R, err)
	}
	if err := json.Unmarshal([]byte(`{"r":"hourly"}`), &in); err == nil {
		t.Fatalf("unknown rule must fail to unmarshal")
	}

	if _, err = Rule(42).MarshalText(); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("want ErrUnknownRule, got %v", err)
	}
	if s := Rule(42).String(); s != "rule(42)" {
		t.Fatalf("String() = %q", s)
	}
	if Rule(42).Recurs() || None.Recurs() {
		t.Fatalf("only known repeating rules recur")
	}
}

func TestAdvance(t *testing.T) {
	base := at("2025-01-06T09:00")
	mustTime(t, Advance(base, Daily), "2025-01-07T09:00")
	mustTime(t, Advance(base, Weekly), "2025-01-13T09:00")
	mustTime(t, Advance(base, Monthly), "2025-02-06T09:00")
	mustTime(t, Advance(base, Yearly), "2026-01-06T09:00")
	mustTime(t, Advance(base, None), "2025-01-06T09:00")
}

func TestStepClampsMonthEnd(t *testing.T) {
	anchor := at("2025-01-31T18:00")
	mustTime(t, Step(anchor, Monthly, 1), "2025-02-28T18:00")
	// the clamp must not drift into later months
	mustTime(t, Step(anchor, Monthly, 2), "2025-03-31T18:00")
	mustTime(t, Step(anchor, Monthly, 3), "2025-04-30T18:00")
	mustTime(t, Step(anchor, Monthly, 12), "2026-01-31T18:00")

	mustTime(t, Step(at("2024-01-31T08:00"), Monthly, 1), "2024-02-29T08:00")
}

func TestStepClampsLeapDay(t *testing.T) {
	anchor := at("2024-02-29T12:00")
	mustTime(t, Step(anchor, Yearly, 1), "2025-02-28T12:00")
	mustTime(t, Step(anchor, Yearly, 4), "2028-02-29T12:00")
}

func TestPeriodsFloor(t *testing.T) {
	anchor := at("2025-01-06T09:00")

	cases := []struct {
		name   string
		anchor time.Time
		target string
		rule   Rule
		want   int
	}{
		{"between occurrences", anchor, "2025-06-01T00:00", Weekly, 20},
		{"on an occurrence", anchor, "2025-01-09T09:00", Daily, 3},
		{"earlier clock time rounds down", anchor, "2025-01-09T08:59", Daily, 2},
		{"month estimate overshoots", at("2025-01-31T10:00"), "2025-02-15T00:00", Monthly, 0},
		{"clamped month end", at("2025-01-31T10:00"), "2025-02-28T10:00", Monthly, 1},
		{"yearly", at("2020-03-01T10:00"), "2025-02-01T00:00", Yearly, 4},
	}
	for _, tc := range cases {
		if n := periods(tc.anchor, at(tc.target), tc.rule); n != tc.want {
			t.Fatalf("%s: periods = %d, want %d", tc.name, n, tc.want)
		}
	}

	target := at("2025-06-01T00:00")
	if Step(anchor, Weekly, 20).After(target) || !Step(anchor, Weekly, 21).After(target) {
		t.Fatalf("periods must be the floor of the step count")
	}
}
