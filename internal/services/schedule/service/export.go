package service

import (
	"context"
	"fmt"
	"time"

	"huddle/internal/core/interval"
	"huddle/internal/platform/logger"
	"huddle/internal/services/schedule/domain"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// floating is the RFC 5545 local time form, naive instants carry no zone
const floating = "20060102T150405"

var uidSpace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("schedule.huddle"))

// ExportBusy renders a user's busy time in a window as an iCalendar document
// Series a calendar client expands the same way are exported once with their
// RRULE, everything else as one opaque VEVENT per occurrence
func (s *Svc) ExportBusy(ctx context.Context, user domain.UserID, q domain.WindowQuery) ([]byte, error) {
	window, err := s.window(q.Start, q.End)
	if err != nil {
		return nil, err
	}
	x, err := s.expandUser(ctx, user, window)
	if err != nil {
		return nil, err
	}

	hit := make(map[int64]bool, len(x.commitments))
	for _, o := range x.occurrences {
		hit[o.CommitmentID] = true
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//huddle//schedule busy export//EN")
	stamp := s.now().UTC()

	series := 0
	for _, c := range x.commitments {
		if !hit[c.ID] || !c.Rule.Recurs() || !c.RFCCompatible() {
			continue
		}
		opt, _ := c.ROption()
		ev := busyEvent(cal, uid("series/%d", c.ID), interval.New(c.Start, c.End), stamp)
		ev.AddRrule(opt.RRuleString())
		hit[c.ID] = false
		series++
	}

	singles := 0
	for _, o := range x.occurrences {
		if !hit[o.CommitmentID] {
			continue
		}
		busyEvent(cal, uid("occurrence/%d/%s", o.CommitmentID, o.Start.Format(floating)), interval.New(o.Start, o.End), stamp)
		singles++
	}

	logger.C(ctx).Debug().
		Str("user_id", x.user.String()).
		Int("series", series).
		Int("occurrences", singles).
		Bool("truncated", x.truncated).
		Msg("busy calendar exported")
	return []byte(cal.Serialize()), nil
}

func busyEvent(cal *ics.Calendar, id string, iv interval.Interval, stamp time.Time) *ics.VEvent {
	ev := cal.AddEvent(id)
	ev.SetDtStampTime(stamp)
	ev.SetProperty(ics.ComponentPropertyDtStart, iv.Start.Format(floating))
	ev.SetProperty(ics.ComponentPropertyDtEnd, iv.End.Format(floating))
	ev.SetSummary("Busy")
	ev.SetProperty(ics.ComponentPropertyTransp, "OPAQUE")
	return ev
}

func uid(format string, a ...any) string {
	return uuid.NewSHA1(uidSpace, fmt.Appendf(nil, format, a...)).String() + "@huddle"
}
