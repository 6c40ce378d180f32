package service

import (
	"context"

	"huddle/internal/core/interval"
	"huddle/internal/core/recurrence"
	"huddle/internal/platform/logger"
	ptime "huddle/internal/platform/time"
	"huddle/internal/services/schedule/domain"
)

// FindConflicts reports, per user and commitment, the first occurrence that
// overlaps candidate
// empty users or an invalid candidate yield no conflicts and no error
func (s *Svc) FindConflicts(ctx context.Context, users []domain.UserID, candidate interval.Interval) ([]domain.ConflictRecord, error) {
	if len(users) == 0 || !candidate.Valid() {
		return nil, nil
	}

	perUser, err := s.fetchAll(ctx, users, candidate)
	if err != nil {
		return nil, err
	}

	var out []domain.ConflictRecord
	for i, u := range users {
		for _, c := range perUser[i] {
			o, ok := recurrence.FirstOverlap(c, candidate.Start, candidate.End)
			if !ok {
				continue
			}
			out = append(out, domain.ConflictRecord{
				UserID:       u,
				CommitmentID: c.ID,
				Interval:     interval.New(o.Start, o.End),
			})
		}
	}

	logger.C(ctx).Debug().
		Int("users", len(users)).
		Int("conflicts", len(out)).
		Msg("conflict check")
	return out, nil
}

// CheckConflicts is FindConflicts over wire input
// unparseable bounds or ids give an unchecked, empty report
func (s *Svc) CheckConflicts(ctx context.Context, in domain.ConflictInput) (domain.ConflictReport, error) {
	report := domain.ConflictReport{Conflicts: []domain.Conflict{}}

	users, err := domain.NormalizeUserIDs(in.UserIDs)
	if err != nil || len(users) == 0 {
		return report, nil
	}
	start, err1 := ptime.ParseNaive(in.Start)
	end, err2 := ptime.ParseNaive(in.End)
	candidate := interval.New(start, end)
	if err1 != nil || err2 != nil || !candidate.Valid() {
		logger.C(ctx).Debug().Str("start", in.Start).Str("end", in.End).Msg("conflict check skipped on invalid candidate")
		return report, nil
	}

	records, err := s.FindConflicts(ctx, users, candidate)
	if err != nil {
		return domain.ConflictReport{}, err
	}

	report.Checked = true
	report.Busy = len(records) > 0
	for _, r := range records {
		report.Conflicts = append(report.Conflicts, domain.Conflict{
			UserID:  r.UserID,
			EventID: r.CommitmentID,
			Span:    span(r.Interval),
		})
	}
	return report, nil
}
