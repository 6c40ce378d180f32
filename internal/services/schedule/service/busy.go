package service

import (
	"cmp"
	"context"
	"slices"

	"huddle/internal/core/interval"
	"huddle/internal/core/recurrence"
	"huddle/internal/services/schedule/domain"
)

// BusyIntervals returns each user's merged busy set and free windows
func (s *Svc) BusyIntervals(ctx context.Context, users []domain.UserID, window interval.Interval) ([]domain.FreeBusy, error) {
	window, err := s.checkWindow(window)
	if err != nil {
		return nil, err
	}
	users, err = strictUsers(users)
	if err != nil {
		return nil, err
	}
	return s.freeBusy(ctx, users, window)
}

// Busy is BusyIntervals over wire input
func (s *Svc) Busy(ctx context.Context, in domain.BusyInput) ([]domain.UserBusy, error) {
	window, err := s.window(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	fb, err := s.BusyIntervals(ctx, in.UserIDs, window)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserBusy, 0, len(fb))
	for _, f := range fb {
		out = append(out, domain.UserBusy{UserID: f.UserID, Busy: spans(f.Busy), Free: spans(f.Free)})
	}
	return out, nil
}

// expansion is one user's commitments and their occurrences in a window
type expansion struct {
	user        domain.UserID
	commitments []recurrence.Commitment
	occurrences []recurrence.Occurrence
	truncated   bool
}

// expandUser expands every commitment of user in window, occurrences sorted
// by start
func (s *Svc) expandUser(ctx context.Context, user domain.UserID, window interval.Interval) (expansion, error) {
	users, err := strictUsers([]domain.UserID{user})
	if err != nil {
		return expansion{}, err
	}
	perUser, err := s.fetchAll(ctx, users, window)
	if err != nil {
		return expansion{}, err
	}

	x := expansion{user: users[0], commitments: perUser[0]}
	for _, c := range x.commitments {
		res := recurrence.Expand(c, window.Start, window.End)
		x.occurrences = append(x.occurrences, res.Occurrences...)
		x.truncated = x.truncated || res.Truncated
	}
	slices.SortStableFunc(x.occurrences, func(a, b recurrence.Occurrence) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.CommitmentID, b.CommitmentID)
	})
	return x, nil
}

// Occurrences lists a user's concrete occurrences in a window
func (s *Svc) Occurrences(ctx context.Context, user domain.UserID, q domain.WindowQuery) (domain.OccurrenceReport, error) {
	window, err := s.window(q.Start, q.End)
	if err != nil {
		return domain.OccurrenceReport{}, err
	}
	x, err := s.expandUser(ctx, user, window)
	if err != nil {
		return domain.OccurrenceReport{}, err
	}

	rep := domain.OccurrenceReport{
		UserID:      x.user,
		Truncated:   x.truncated,
		Occurrences: make([]domain.OccurrenceRow, 0, len(x.occurrences)),
	}
	for _, o := range x.occurrences {
		rep.Occurrences = append(rep.Occurrences, domain.OccurrenceRow{
			EventID: o.CommitmentID,
			Span:    span(interval.New(o.Start, o.End)),
		})
	}
	return rep, nil
}
