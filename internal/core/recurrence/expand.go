package recurrence

import (
	"iter"
	"time"
)

// MaxIterations bounds the stepping loop of a single expansion
const MaxIterations = 500

// Commitment is one stored event as seen by the expander
// [Start, End) is the anchor, the first occurrence of the series
type Commitment struct {
	ID    int64
	Owner string
	Start time.Time
	End   time.Time
	Rule  Rule
}

// Duration is the length shared by every occurrence of the commitment
func (c Commitment) Duration() time.Duration { return c.End.Sub(c.Start) }

// Valid reports whether the anchor has positive length and the rule is known
func (c Commitment) Valid() bool { return c.End.After(c.Start) && c.Rule.Valid() }

// Occurrence is one concrete materialization of a commitment
type Occurrence struct {
	CommitmentID int64
	Start        time.Time
	End          time.Time
}

// Options tune a single expansion
type Options struct {
	// MaxIterations overrides the package cap, zero keeps MaxIterations
	MaxIterations int
	// StopAtFirst ends the expansion after the first overlapping occurrence
	StopAtFirst bool
}

func (o Options) limit() int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return MaxIterations
}

// Result carries the occurrences of one expansion
// Truncated is set when the iteration cap was reached before the window end
type Result struct {
	Occurrences []Occurrence
	Truncated   bool
}

// Expand returns every occurrence of c that overlaps [ws, we)
func Expand(c Commitment, ws, we time.Time) Result {
	return ExpandWith(c, ws, we, Options{})
}

// ExpandWith is Expand with explicit options
func ExpandWith(c Commitment, ws, we time.Time, opt Options) Result {
	var res Result
	res.Truncated = walk(c, ws, we, opt.limit(), func(o Occurrence) bool {
		res.Occurrences = append(res.Occurrences, o)
		return !opt.StopAtFirst
	})
	return res
}

// FirstOverlap returns the earliest occurrence of c overlapping [ws, we)
func FirstOverlap(c Commitment, ws, we time.Time) (Occurrence, bool) {
	res := ExpandWith(c, ws, we, Options{StopAtFirst: true})
	if len(res.Occurrences) == 0 {
		return Occurrence{}, false
	}
	return res.Occurrences[0], true
}

// Seq yields the occurrences of c overlapping [ws, we) lazily
// the sequence is finite, bounded by MaxIterations
func Seq(c Commitment, ws, we time.Time) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		walk(c, ws, we, MaxIterations, yield)
	}
}

// walk drives the expansion and reports whether it stopped on the cap
func walk(c Commitment, ws, we time.Time, limit int, yield func(Occurrence) bool) bool {
	if !c.Valid() || !we.After(ws) {
		return false
	}

	d := c.Duration()
	if !c.Rule.Recurs() {
		if overlaps(c.Start, c.End, ws, we) {
			yield(Occurrence{CommitmentID: c.ID, Start: c.Start, End: c.End})
		}
		return false
	}

	// fast-forward to the last occurrence that ends at or before ws
	n := 0
	if target := ws.Add(-d); c.Start.Before(target) {
		n = periods(c.Start, target, c.Rule)
	}
	cursor := Step(c.Start, c.Rule, n)

	i := 0
	for ; !cursor.After(we) && i < limit; i++ {
		end := cursor.Add(d)
		if overlaps(cursor, end, ws, we) {
			if !yield(Occurrence{CommitmentID: c.ID, Start: cursor, End: end}) {
				return false
			}
		}
		n++
		cursor = Step(c.Start, c.Rule, n)
	}
	return i >= limit && !cursor.After(we)
}

// overlaps is the half open test NOT (end <= ws OR start >= we)
func overlaps(start, end, ws, we time.Time) bool {
	return end.After(ws) && start.Before(we)
}
