// Package time contains helpers for naive (zone less) wall clock instants
package time

import (
	"fmt"
	"strings"
	"time"
)

// NaiveLayout is the wire layout for naive instants
const NaiveLayout = "2006-01-02T15:04:05"

// naiveLayouts are tried in order, none of them carry an offset
var naiveLayouts = []string{
	NaiveLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseNaive parses s into a naive instant held in time.UTC
// strings with an explicit offset are converted to UTC first
func ParseNaive(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty instant")
	}
	for _, l := range naiveLayouts {
		if t, err := time.ParseInLocation(l, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid instant %q", s)
}

// FormatNaive renders t with NaiveLayout
func FormatNaive(t time.Time) string { return t.Format(NaiveLayout) }

// Naive drops the zone of t keeping its wall clock
func Naive(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
