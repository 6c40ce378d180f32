// Package service contains the conflict and availability workflows
package service

import (
	"context"
	"time"

	"huddle/internal/core/interval"
	"huddle/internal/core/recurrence"
	"huddle/internal/modkit/repokit"
	perr "huddle/internal/platform/errors"
	"huddle/internal/platform/logger"
	ptime "huddle/internal/platform/time"
	"huddle/internal/services/schedule/domain"
	"huddle/internal/services/schedule/repo"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
)

// Service defines the schedule service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the service
type Config struct {
	// FetchConcurrency bounds parallel per user fetches
	FetchConcurrency int
	// MaxWindow bounds the width of availability, busy and expansion windows
	MaxWindow time.Duration
}

const (
	defaultFetchConcurrency = 8
	defaultMaxWindow        = 366 * 24 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = defaultFetchConcurrency
	}
	if c.MaxWindow <= 0 {
		c.MaxWindow = defaultMaxWindow
	}
	return c
}

// Svc implements the schedule service
type Svc struct {
	source domain.CommitmentSource
	cfg    Config
	now    func() time.Time
}

// New constructs a schedule service reading commitments through the repo binder
// every fetch runs in its own transaction on db
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("schedule.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("schedule.Service requires a non nil Repo binder")
	}
	return NewWithSource(txSource{db: db, binder: binder, backoff: fetchBackoff}, cfg)
}

// fetchRetries is how many times a fetch is re-run after a transient failure
const fetchRetries = 2

func fetchBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	return b
}

// txSource binds the repo inside a transaction per fetch
// serialization failures and server restarts re-run the whole transaction
type txSource struct {
	db      repokit.TxRunner
	binder  repokit.Binder[repo.Repo]
	backoff func() backoff.BackOff
}

func (t txSource) Commitments(ctx context.Context, user domain.UserID, hint interval.Interval) ([]recurrence.Commitment, error) {
	var out []recurrence.Commitment
	op := func() error {
		err := repokit.WithTx(ctx, t.db, func(q repokit.Queryer) error {
			var err error
			out, err = t.binder.Bind(q).Commitments(ctx, user, hint)
			return err
		})
		if err != nil && !perr.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		logger.C(ctx).Debug().Err(err).Str("user_id", user.String()).Dur("wait", wait).Msg("retrying commitments fetch")
	}
	b := backoff.WithContext(backoff.WithMaxRetries(t.backoff(), fetchRetries), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, err
	}
	return out, nil
}

// NewWithSource constructs a schedule service over any commitments source
func NewWithSource(src domain.CommitmentSource, cfg Config) *Svc {
	if src == nil {
		panic("schedule.Service requires a non nil CommitmentSource")
	}
	return &Svc{source: src, cfg: cfg.withDefaults(), now: time.Now}
}

// fetchAll fans out one Commitments call per user and returns the results in
// user order, the first failure cancels the rest and is returned
func (s *Svc) fetchAll(ctx context.Context, users []domain.UserID, hint interval.Interval) ([][]recurrence.Commitment, error) {
	out := make([][]recurrence.Commitment, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FetchConcurrency)
	for i, u := range users {
		g.Go(func() error {
			cs, err := s.source.Commitments(gctx, u, hint)
			if err != nil {
				logger.C(ctx).Warn().Err(err).Str("user_id", u.String()).Msg("commitments fetch failed")
				if perr.CodeOf(err) == perr.ErrorCodeUnknown {
					return perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch commitments for %s", u)
				}
				return err
			}
			out[i] = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// window parses and validates a [start, end) pair for the strict workflows
func (s *Svc) window(start, end string) (interval.Interval, error) {
	ws, err := ptime.ParseNaive(start)
	if err != nil {
		return interval.Interval{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "start: %v", err), "start")
	}
	we, err := ptime.ParseNaive(end)
	if err != nil {
		return interval.Interval{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "end: %v", err), "end")
	}
	return s.checkWindow(interval.New(ws, we))
}

func (s *Svc) checkWindow(w interval.Interval) (interval.Interval, error) {
	if !w.Valid() {
		return interval.Interval{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "end must be after start"), "end")
	}
	if w.Duration() > s.cfg.MaxWindow {
		return interval.Interval{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "window must not exceed %s", s.cfg.MaxWindow), "end")
	}
	return w, nil
}

// strictUsers normalizes ids and requires at least one
func strictUsers(ids []domain.UserID) ([]domain.UserID, error) {
	users, err := domain.NormalizeUserIDs(ids)
	if err != nil {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%v", err), "user_ids")
	}
	if len(users) == 0 {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "at least one user is required"), "user_ids")
	}
	return users, nil
}

func span(i interval.Interval) domain.Span {
	return domain.Span{Start: ptime.FormatNaive(i.Start), End: ptime.FormatNaive(i.End)}
}

func spans(xs []interval.Interval) []domain.Span {
	out := make([]domain.Span, 0, len(xs))
	for _, x := range xs {
		out = append(out, span(x))
	}
	return out
}
