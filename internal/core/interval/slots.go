package interval

import (
	"fmt"
	"strings"
	"time"
)

// SlotMode selects how bookable slots are cut from free windows
type SlotMode uint8

const (
	// Earliest emits one slot at the start of every large enough free window
	Earliest SlotMode = iota
	// Packed emits back to back slots filling every free window
	Packed
)

// ParseSlotMode maps "earliest" (or empty) and "packed" to a SlotMode
func ParseSlotMode(s string) (SlotMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "earliest":
		return Earliest, nil
	case "packed":
		return Packed, nil
	}
	return Earliest, fmt.Errorf("unknown slot mode %q", s)
}

func (m SlotMode) String() string {
	if m == Packed {
		return "packed"
	}
	return "earliest"
}

// MaxPackedSlots bounds Packed output for tiny durations over wide windows
const MaxPackedSlots = 10000

// Slots cuts slots of length d out of sorted free windows, in chronological order
// truncated is set when Packed output stopped at MaxPackedSlots with room left
func Slots(free []Interval, d time.Duration, mode SlotMode) (out []Interval, truncated bool) {
	if d <= 0 {
		return nil, false
	}
	for _, f := range free {
		if f.Duration() < d {
			continue
		}
		if mode != Packed {
			out = append(out, Interval{Start: f.Start, End: f.Start.Add(d)})
			continue
		}
		for s := f.Start; !s.Add(d).After(f.End); s = s.Add(d) {
			if len(out) == MaxPackedSlots {
				return out, true
			}
			out = append(out, Interval{Start: s, End: s.Add(d)})
		}
	}
	return out, false
}
