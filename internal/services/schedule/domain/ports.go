package domain

import (
	"context"

	"huddle/internal/core/interval"
	"huddle/internal/core/recurrence"
)

// CommitmentSource yields the commitments a user owns or attends that are not
// deleted and may overlap or recur into hint
// implementations may over fetch, callers re-check exact overlap
type CommitmentSource interface {
	Commitments(ctx context.Context, user UserID, hint interval.Interval) ([]recurrence.Commitment, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	CheckConflicts(ctx context.Context, in ConflictInput) (ConflictReport, error)
	ResolveAvailability(ctx context.Context, in AvailabilityInput) (AvailabilityReport, error)
	Busy(ctx context.Context, in BusyInput) ([]UserBusy, error)
	Occurrences(ctx context.Context, user UserID, q WindowQuery) (OccurrenceReport, error)
	ExportBusy(ctx context.Context, user UserID, q WindowQuery) ([]byte, error)
}
