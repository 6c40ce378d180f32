// Package interval implements half open [start, end) time interval algebra
package interval

import (
	"slices"
	"time"
)

// Interval is a half open span of naive instants
type Interval struct {
	Start time.Time
	End   time.Time
}

// New builds an interval from its bounds
func New(start, end time.Time) Interval { return Interval{Start: start, End: end} }

// Valid reports start < end
func (i Interval) Valid() bool { return i.End.After(i.Start) }

// Duration is End - Start, zero for invalid intervals
func (i Interval) Duration() time.Duration {
	if !i.Valid() {
		return 0
	}
	return i.End.Sub(i.Start)
}

// Overlaps reports a positive length overlap, invalid intervals never overlap
func (i Interval) Overlaps(o Interval) bool {
	if !i.Valid() || !o.Valid() {
		return false
	}
	return i.End.After(o.Start) && i.Start.Before(o.End)
}

// Clip returns i restricted to w and whether anything is left
func (i Interval) Clip(w Interval) (Interval, bool) {
	c := Interval{Start: later(i.Start, w.Start), End: earlier(i.End, w.End)}
	return c, c.Valid()
}

// Merge coalesces intervals into a sorted, non overlapping set
// touching intervals merge and invalid intervals are dropped
func Merge(in []Interval) []Interval {
	xs := make([]Interval, 0, len(in))
	for _, i := range in {
		if i.Valid() {
			xs = append(xs, i)
		}
	}
	if len(xs) == 0 {
		return nil
	}
	slices.SortFunc(xs, func(a, b Interval) int { return a.Start.Compare(b.Start) })

	out := make([]Interval, 0, len(xs))
	cur := xs[0]
	for _, x := range xs[1:] {
		if !x.Start.After(cur.End) {
			cur.End = later(cur.End, x.End)
			continue
		}
		out = append(out, cur)
		cur = x
	}
	return append(out, cur)
}

// Complement returns the gaps of busy inside window
// busy must be merged, the result is sorted and clipped to window
func Complement(busy []Interval, window Interval) []Interval {
	if !window.Valid() {
		return nil
	}
	var out []Interval
	cursor := window.Start
	for _, b := range busy {
		if !b.End.After(cursor) {
			continue
		}
		if !b.Start.Before(window.End) {
			break
		}
		if b.Start.After(cursor) {
			out = append(out, Interval{Start: cursor, End: b.Start})
		}
		cursor = later(cursor, b.End)
	}
	if cursor.Before(window.End) {
		out = append(out, Interval{Start: cursor, End: window.End})
	}
	return out
}

// Intersect returns the positive length overlaps of two sorted, non
// overlapping lists
func Intersect(a, b []Interval) []Interval {
	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := later(a[i].Start, b[j].Start)
		hi := earlier(a[i].End, b[j].End)
		if hi.After(lo) {
			out = append(out, Interval{Start: lo, End: hi})
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}

// IntersectAll folds Intersect left to right, stopping on the first empty result
func IntersectAll(lists ...[]Interval) []Interval {
	if len(lists) == 0 {
		return nil
	}
	acc := lists[0]
	for _, l := range lists[1:] {
		if len(acc) == 0 {
			return nil
		}
		acc = Intersect(acc, l)
	}
	if len(acc) == 0 {
		return nil
	}
	return acc
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
