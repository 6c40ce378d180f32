package recurrence

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func commitment(start, end string, r Rule) Commitment {
	return Commitment{ID: 7, Owner: "u1", Start: at(start), End: at(end), Rule: r}
}

func startsOf(occ []Occurrence) []time.Time {
	out := make([]time.Time, 0, len(occ))
	for _, o := range occ {
		out = append(out, o.Start)
	}
	return out
}

func mustStarts(t *testing.T, got []Occurrence, want ...string) {
	t.Helper()
	starts := startsOf(got)
	if len(starts) != len(want) {
		t.Fatalf("got %d occurrences %v, want %v", len(starts), starts, want)
	}
	for i, w := range want {
		mustTime(t, starts[i], w)
	}
}

func TestExpandSingle(t *testing.T) {
	c := commitment("2025-01-01T10:00", "2025-01-01T11:00", None)

	res := Expand(c, at("2025-01-01T10:30"), at("2025-01-01T11:30"))
	if len(res.Occurrences) != 1 || res.Truncated {
		t.Fatalf("unexpected result %+v", res)
	}
	if o := res.Occurrences[0]; o != (Occurrence{CommitmentID: 7, Start: c.Start, End: c.End}) {
		t.Fatalf("occurrence = %+v", o)
	}

	// touching edges do not overlap
	if got := Expand(c, at("2025-01-01T11:00"), at("2025-01-01T12:00")).Occurrences; len(got) != 0 {
		t.Fatalf("window after end: %v", got)
	}
	if got := Expand(c, at("2025-01-01T09:00"), at("2025-01-01T10:00")).Occurrences; len(got) != 0 {
		t.Fatalf("window before start: %v", got)
	}
}

func TestExpandRejectsInvalid(t *testing.T) {
	c := commitment("2025-01-01T10:00", "2025-01-01T11:00", Daily)
	unknown := c
	unknown.Rule = Rule(9)

	cases := map[string]struct {
		c      Commitment
		ws, we string
	}{
		"inverted":        {commitment("2025-01-01T11:00", "2025-01-01T10:00", Daily), "2024-12-01T00:00", "2025-02-01T00:00"},
		"empty":           {commitment("2025-01-01T10:00", "2025-01-01T10:00", None), "2024-12-01T00:00", "2025-02-01T00:00"},
		"inverted window": {c, "2025-02-01T00:00", "2025-01-01T00:00"},
		"unknown rule":    {unknown, "2024-12-01T00:00", "2025-02-01T00:00"},
	}
	for name, tc := range cases {
		if got := Expand(tc.c, at(tc.ws), at(tc.we)).Occurrences; len(got) != 0 {
			t.Fatalf("%s: want no occurrences, got %v", name, got)
		}
	}
}

func TestExpandWeeklyFastForward(t *testing.T) {
	c := commitment("2025-01-06T09:00", "2025-01-06T10:00", Weekly)

	// a cap far below the 21 weeks between anchor and window proves the jump
	res := ExpandWith(c, at("2025-06-01T00:00"), at("2025-06-08T00:00"), Options{MaxIterations: 3})
	if res.Truncated {
		t.Fatalf("fast forward must not hit the cap")
	}
	mustStarts(t, res.Occurrences, "2025-06-02T09:00")
	if wd := res.Occurrences[0].Start.Weekday(); wd != time.Monday {
		t.Fatalf("weekday drifted to %s", wd)
	}
}

func TestExpandDailyWindow(t *testing.T) {
	c := commitment("2025-01-01T12:00", "2025-01-01T13:00", Daily)
	res := Expand(c, at("2025-03-10T00:00"), at("2025-03-13T00:00"))
	mustStarts(t, res.Occurrences, "2025-03-10T12:00", "2025-03-11T12:00", "2025-03-12T12:00")
}

func TestExpandLongOccurrenceStraddlesWindowStart(t *testing.T) {
	// 36h occurrences every day overlap the window from the previous day
	c := commitment("2025-01-01T00:00", "2025-01-02T12:00", Daily)
	res := ExpandWith(c, at("2025-02-10T06:00"), at("2025-02-10T07:00"), Options{MaxIterations: 5})
	mustStarts(t, res.Occurrences, "2025-02-09T00:00", "2025-02-10T00:00")
}

func TestExpandMonthlyClamp(t *testing.T) {
	c := commitment("2025-01-31T18:00", "2025-01-31T19:00", Monthly)
	res := Expand(c, at("2025-02-01T00:00"), at("2025-05-01T00:00"))
	mustStarts(t, res.Occurrences, "2025-02-28T18:00", "2025-03-31T18:00", "2025-04-30T18:00")
}

func TestExpandYearly(t *testing.T) {
	c := commitment("2019-07-04T00:00", "2019-07-05T00:00", Yearly)
	res := ExpandWith(c, at("2025-01-01T00:00"), at("2026-01-01T00:00"), Options{MaxIterations: 3})
	mustStarts(t, res.Occurrences, "2025-07-04T00:00")
}

func TestExpandSafetyCap(t *testing.T) {
	c := commitment("1990-01-01T08:00", "1990-01-01T09:00", Daily)
	res := Expand(c, at("2020-01-01T00:00"), at("2030-01-01T00:00"))
	// the first iteration lands on the occurrence just before the window
	if len(res.Occurrences) != MaxIterations-1 || !res.Truncated {
		t.Fatalf("want %d truncated occurrences, got %d truncated=%v", MaxIterations-1, len(res.Occurrences), res.Truncated)
	}
	if last := res.Occurrences[len(res.Occurrences)-1]; !last.Start.Before(at("2030-01-01T00:00")) {
		t.Fatalf("last occurrence %s outside window", last.Start)
	}
}

func TestExpandInvariants(t *testing.T) {
	ws, we := at("2025-03-01T00:00"), at("2025-09-01T00:00")
	for _, r := range []Rule{None, Daily, Weekly, Monthly, Yearly} {
		c := commitment("2024-11-30T22:30", "2024-12-01T01:15", r)
		for _, o := range Expand(c, ws, we).Occurrences {
			if o.End.Sub(o.Start) != c.Duration() {
				t.Fatalf("%s: occurrence duration %s != %s", r, o.End.Sub(o.Start), c.Duration())
			}
			if !o.End.After(ws) || !o.Start.Before(we) {
				t.Fatalf("%s: occurrence %s outside window", r, o.Start)
			}
		}
	}
}

func TestFirstOverlap(t *testing.T) {
	c := commitment("2025-01-06T09:00", "2025-01-06T10:00", Weekly)

	o, ok := FirstOverlap(c, at("2025-03-01T00:00"), at("2025-04-01T00:00"))
	if !ok {
		t.Fatalf("expected an overlap in March")
	}
	mustTime(t, o.Start, "2025-03-03T09:00")

	if _, ok = FirstOverlap(c, at("2025-03-04T00:00"), at("2025-03-09T00:00")); ok {
		t.Fatalf("no Monday between Tuesday and Sunday")
	}
}

func TestSeqMatchesExpand(t *testing.T) {
	c := commitment("2025-01-06T09:00", "2025-01-06T10:00", Daily)
	ws, we := at("2025-02-01T00:00"), at("2025-02-15T00:00")

	var got []Occurrence
	for o := range Seq(c, ws, we) {
		got = append(got, o)
	}
	if want := Expand(c, ws, we).Occurrences; !slices.Equal(got, want) {
		t.Fatalf("Seq = %v, Expand = %v", got, want)
	}

	n := 0
	for range Seq(c, ws, we) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("early break yielded %d", n)
	}
}

func TestExpandAgreesWithRRule(t *testing.T) {
	ws, we := at("2025-04-01T00:00"), at("2025-08-01T00:00")
	for _, c := range []Commitment{
		commitment("2024-02-10T07:30", "2024-02-10T08:00", Daily),
		commitment("2023-05-03T19:00", "2023-05-03T21:00", Weekly),
		commitment("2022-09-15T12:00", "2022-09-15T13:00", Monthly),
		commitment("2020-06-20T00:00", "2020-06-21T00:00", Yearly),
	} {
		if !c.RFCCompatible() {
			t.Fatalf("%s: expected RFC compatible", c.Rule)
		}
		rr, err := c.RRule()
		if err != nil {
			t.Fatalf("%s: RRule: %v", c.Rule, err)
		}

		// occurrences overlapping [ws, we) start in (ws - d, we)
		want := rr.Between(ws.Add(-c.Duration()), we, false)
		got := startsOf(Expand(c, ws, we).Occurrences)
		if len(got) != len(want) {
			t.Fatalf("%s: %d occurrences, rrule has %d", c.Rule, len(got), len(want))
		}
		for i := range want {
			if !want[i].Equal(got[i]) {
				t.Fatalf("%s: occurrence %d at %s, rrule at %s", c.Rule, i, got[i], want[i])
			}
		}
	}
}

func TestRFCCompatible(t *testing.T) {
	cases := []struct {
		c    Commitment
		want bool
	}{
		{commitment("2025-01-31T10:00", "2025-01-31T11:00", Monthly), false},
		{commitment("2024-02-29T10:00", "2024-02-29T11:00", Yearly), false},
		{commitment("2024-02-28T10:00", "2024-02-28T11:00", Yearly), true},
		{commitment("2024-02-28T10:00", "2024-02-28T11:00", None), false},
	}
	for _, tc := range cases {
		if got := tc.c.RFCCompatible(); got != tc.want {
			t.Fatalf("%s from %s: RFCCompatible = %v", tc.c.Rule, tc.c.Start, got)
		}
	}

	if _, err := commitment("2024-02-28T10:00", "2024-02-28T11:00", None).RRule(); !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("want ErrUnknownRule, got %v", err)
	}
}
