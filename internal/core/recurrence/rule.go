// Package recurrence expands repeating commitments into concrete occurrences
package recurrence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Rule is the closed set of repetition rules a commitment may carry
type Rule uint8

const (
	// None is a single, non repeating commitment
	None Rule = iota
	// Daily repeats every calendar day
	Daily
	// Weekly repeats every seven calendar days
	Weekly
	// Monthly repeats on the same day of every month, clamped to the month end
	Monthly
	// Yearly repeats on the same month and day every year, clamped to the month end
	Yearly
)

var ruleNames = [...]string{
	None:    "none",
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
}

// ErrUnknownRule is returned by ParseRule for names outside the vocabulary
var ErrUnknownRule = errors.New("recurrence: unknown rule")

// ParseRule maps a stored rule name to a Rule
// empty and "none" both mean None
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	}
	return None, fmt.Errorf("%w %q", ErrUnknownRule, s)
}

// String returns the lowercase rule name
func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "rule(" + strconv.Itoa(int(r)) + ")"
}

// Valid reports whether r is one of the declared rules
func (r Rule) Valid() bool { return r <= Yearly }

// Recurs reports whether r produces more than one occurrence
func (r Rule) Recurs() bool { return r != None && r.Valid() }

// MarshalText implements encoding.TextMarshaler
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownRule, r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rule) UnmarshalText(b []byte) error {
	v, err := ParseRule(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Advance returns the occurrence start that follows t under r
func Advance(t time.Time, r Rule) time.Time { return Step(t, r, 1) }

// Step returns the start of the n-th occurrence of a series anchored at anchor
// Every step is computed from the anchor so a clamped month end never drifts
// into later occurrences (Jan 31, Feb 28, Mar 31)
func Step(anchor time.Time, r Rule, n int) time.Time {
	switch r {
	case Daily:
		return anchor.AddDate(0, 0, n)
	case Weekly:
		return anchor.AddDate(0, 0, 7*n)
	case Monthly:
		return addMonths(anchor, n)
	case Yearly:
		return addMonths(anchor, 12*n)
	default:
		return anchor
	}
}

// addMonths moves t by n calendar months keeping the wall clock, clamping the
// day to the last day of the target month
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(total-floorDiv(total, 12)*12 + 1)
	if last := daysIn(ty, tm); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(ty, tm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv[T int | int64](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

const secondsPerDay = 24 * 60 * 60

// periods returns the largest n such that Step(anchor, r, n) <= target
// target must not be before anchor
func periods(anchor, target time.Time, r Rule) int {
	var n int
	switch r {
	case Daily:
		n = int(floorDiv(target.Unix()-anchor.Unix(), secondsPerDay))
	case Weekly:
		n = int(floorDiv(target.Unix()-anchor.Unix(), 7*secondsPerDay))
	case Monthly:
		n = (target.Year()-anchor.Year())*12 + int(target.Month()) - int(anchor.Month())
	case Yearly:
		n = target.Year() - anchor.Year()
	default:
		return 0
	}
	if n < 0 {
		n = 0
	}
	// the estimate is off by at most one period (clock time, clamping, DST)
	for n > 0 && Step(anchor, r, n).After(target) {
		n--
	}
	for !Step(anchor, r, n+1).After(target) {
		n++
	}
	return n
}
