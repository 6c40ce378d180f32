package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"
)

// Frequency maps r onto an RFC 5545 frequency
func (r Rule) Frequency() (rrule.Frequency, bool) {
	switch r {
	case Daily:
		return rrule.DAILY, true
	case Weekly:
		return rrule.WEEKLY, true
	case Monthly:
		return rrule.MONTHLY, true
	case Yearly:
		return rrule.YEARLY, true
	}
	return 0, false
}

// ROption builds the rrule option describing the series of c
func (c Commitment) ROption() (rrule.ROption, bool) {
	freq, ok := c.Rule.Frequency()
	if !ok {
		return rrule.ROption{}, false
	}
	return rrule.ROption{Freq: freq, Dtstart: c.Start}, true
}

// RRule returns the rrule for a recurring commitment
func (c Commitment) RRule() (*rrule.RRule, error) {
	opt, ok := c.ROption()
	if !ok {
		return nil, ErrUnknownRule
	}
	return rrule.NewRRule(opt)
}

// RFCCompatible reports whether an RFC 5545 reader expanding the rrule of c
// lands on the same instants as Step
// RFC 5545 skips months without the anchor day where Step clamps
func (c Commitment) RFCCompatible() bool {
	switch c.Rule {
	case Daily, Weekly:
		return true
	case Monthly:
		return c.Start.Day() <= 28
	case Yearly:
		return !(c.Start.Month() == time.February && c.Start.Day() == 29)
	}
	return false
}
