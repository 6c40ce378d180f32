// Package store owns the database handle the services read through
package store

import (
	"context"
	"errors"
	"fmt"

	"huddle/internal/platform/logger"
)

// Row is one scannable result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set, callers must Close it
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
}

// CommandTag reports what a statement changed
type CommandTag interface {
	RowsAffected() int64
}

// RowQuerier is the statement surface repos run SQL through
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// TxRunner runs fn in one transaction, committed when fn returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Store holds the optional backends, a nil PG means postgres is disabled
type Store struct {
	Log logger.Logger
	PG  TxRunner
}

// Option adjusts a Store during Open
type Option func(*Store)

// WithLogger sets the logger used for connection and SQL logs
func WithLogger(log logger.Logger) Option { return func(s *Store) { s.Log = log } }

// Open connects the backends enabled in cfg
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: logger.Named("store").With().Logger()}
	for _, o := range opts {
		o(s)
	}
	if !cfg.PG.Enabled {
		return s, nil
	}
	pg, err := openPG(ctx, cfg.PG, s.Log)
	if err != nil {
		return nil, err
	}
	s.PG = pg
	return s, nil
}

type pinger interface{ Ping(context.Context) error }

// Guard pings every open backend and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.PG.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
	}
	return nil
}

// Close releases every open backend
func (s *Store) Close(context.Context) error {
	if c, ok := s.PG.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}

// Exec runs a statement
func Exec(ctx context.Context, q RowQuerier, sql string, args ...any) (CommandTag, error) {
	return q.Exec(ctx, sql, args...)
}

// Many runs a query and maps every row through scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
