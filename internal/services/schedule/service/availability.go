package service

import (
	"context"
	"time"

	"huddle/internal/core/interval"
	"huddle/internal/core/recurrence"
	perr "huddle/internal/platform/errors"
	"huddle/internal/platform/logger"
	"huddle/internal/services/schedule/domain"
)

// AvailabilityQuery asks for slots common to every user
type AvailabilityQuery struct {
	UserIDs         []domain.UserID
	DurationMinutes int
	Window          interval.Interval
	Mode            interval.SlotMode
}

// Availability is the outcome of FindAvailability
type Availability struct {
	Slots []interval.Interval
	// Truncated is set when Packed output stopped at interval.MaxPackedSlots
	Truncated bool
}

// FindAvailability returns slots of the requested duration inside every
// user's free time, in chronological order
// unlike FindConflicts, bad input is a validation error, never "all free"
func (s *Svc) FindAvailability(ctx context.Context, q AvailabilityQuery) (Availability, error) {
	if q.DurationMinutes <= 0 {
		return Availability{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "duration_minutes must be positive"), "duration_minutes")
	}
	window, err := s.checkWindow(q.Window)
	if err != nil {
		return Availability{}, err
	}
	users, err := strictUsers(q.UserIDs)
	if err != nil {
		return Availability{}, err
	}

	fb, err := s.freeBusy(ctx, users, window)
	if err != nil {
		return Availability{}, err
	}

	free := make([][]interval.Interval, 0, len(fb))
	for _, f := range fb {
		free = append(free, f.Free)
	}
	slots, truncated := interval.Slots(interval.IntersectAll(free...), time.Duration(q.DurationMinutes)*time.Minute, q.Mode)

	log := logger.C(ctx)
	if truncated {
		log.Warn().Int("cap", interval.MaxPackedSlots).Int("duration_min", q.DurationMinutes).Msg("packed slots truncated")
	}
	log.Debug().
		Int("users", len(users)).
		Int("duration_min", q.DurationMinutes).
		Int("slots", len(slots)).
		Str("mode", q.Mode.String()).
		Msg("availability resolved")
	return Availability{Slots: slots, Truncated: truncated}, nil
}

// ResolveAvailability is FindAvailability over wire input
func (s *Svc) ResolveAvailability(ctx context.Context, in domain.AvailabilityInput) (domain.AvailabilityReport, error) {
	window, err := s.window(in.Start, in.End)
	if err != nil {
		return domain.AvailabilityReport{}, err
	}
	mode, err := interval.ParseSlotMode(in.Mode)
	if err != nil {
		return domain.AvailabilityReport{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%v", err), "mode")
	}
	res, err := s.FindAvailability(ctx, AvailabilityQuery{
		UserIDs:         in.UserIDs,
		DurationMinutes: in.DurationMinutes,
		Window:          window,
		Mode:            mode,
	})
	if err != nil {
		return domain.AvailabilityReport{}, err
	}
	return domain.AvailabilityReport{Mode: mode.String(), Slots: spans(res.Slots), Truncated: res.Truncated}, nil
}

// freeBusy expands and merges every user's commitments inside window
func (s *Svc) freeBusy(ctx context.Context, users []domain.UserID, window interval.Interval) ([]domain.FreeBusy, error) {
	perUser, err := s.fetchAll(ctx, users, window)
	if err != nil {
		return nil, err
	}

	log := logger.C(ctx)
	out := make([]domain.FreeBusy, 0, len(users))
	for i, u := range users {
		var occ []interval.Interval
		for _, c := range perUser[i] {
			res := recurrence.Expand(c, window.Start, window.End)
			if res.Truncated {
				log.Debug().Int64("event_id", c.ID).Str("user_id", u.String()).Msg("expansion truncated at iteration cap")
			}
			for _, o := range res.Occurrences {
				if clipped, ok := interval.New(o.Start, o.End).Clip(window); ok {
					occ = append(occ, clipped)
				}
			}
		}
		busy := interval.Merge(occ)
		out = append(out, domain.FreeBusy{
			UserID: u,
			Busy:   busy,
			Free:   interval.Complement(busy, window),
		})
	}
	return out, nil
}
