// Package repo provides postgres access to event commitments
package repo

import (
	"context"
	"fmt"
	"time"

	"huddle/internal/core/interval"
	"huddle/internal/core/recurrence"
	"huddle/internal/modkit/repokit"
	perr "huddle/internal/platform/errors"
	"huddle/internal/platform/logger"
	"huddle/internal/platform/store"
	"huddle/internal/services/schedule/domain"
)

// Repo is the persistence surface the schedule service reads from
type Repo interface {
	domain.CommitmentSource
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: repokit.RequireQueryer(q)} }

// Commitments reads events owned or attended by user that are not deleted
// non recurring rows must reach into the hint, recurring rows only need to be
// anchored before its end
func (r *queries) Commitments(ctx context.Context, user domain.UserID, hint interval.Interval) ([]recurrence.Commitment, error) {
	const sql = `
select distinct e.event_id, e.owner_id::text, e.start_time, e.end_time, coalesce(rt.name, '')
from event e
left join event_attendee ea on ea.event_id = e.event_id
left join recurring_type rt on rt.recurring_type_id = e.recurring_type_id
where (e.owner_id::text = $1 or ea.user_id::text = $1)
and e.deleted_at is null
and e.start_time < $3
and (e.recurring_type_id is not null or e.end_time >= $2)
order by e.event_id
`
	rows, err := store.Many(ctx, r.q, scanEvent, sql, user.String(), hint.Start, hint.End)
	if err != nil {
		return nil, perr.FromPostgresf(err, "query commitments for %s", user)
	}

	log := logger.C(ctx)
	out := make([]recurrence.Commitment, 0, len(rows))
	for _, e := range rows {
		rule, err := recurrence.ParseRule(e.rule)
		if err != nil {
			log.Warn().Int64("event_id", e.ID).Str("recurrence", e.rule).Msg("skipping event with unknown recurrence")
			continue
		}
		e.Rule = rule
		if !e.Valid() {
			log.Warn().Int64("event_id", e.ID).Time("start", e.Start).Time("end", e.End).Msg("skipping event with empty or inverted interval")
			continue
		}
		out = append(out, e.Commitment)
	}
	return out, nil
}

// eventRow is a commitment with its recurrence still in text form
type eventRow struct {
	recurrence.Commitment
	rule string
}

func scanEvent(row store.Row) (eventRow, error) {
	var e eventRow
	err := row.Scan(&e.ID, &e.Owner, &e.Start, &e.End, &e.rule)
	return e, err
}

// ReadOnly marks the transaction read only and bounds each statement by timeout
// a zero timeout keeps the server default
func ReadOnly(timeout time.Duration) repokit.BeginHook {
	return func(ctx context.Context, q repokit.Queryer) error {
		if _, err := store.Exec(ctx, q, "set transaction read only"); err != nil {
			return perr.FromPostgres(err, "begin read only")
		}
		if timeout <= 0 {
			return nil
		}
		if _, err := store.Exec(ctx, q, fmt.Sprintf("set local statement_timeout = %d", timeout.Milliseconds())); err != nil {
			return perr.FromPostgres(err, "set statement timeout")
		}
		return nil
	}
}
