package store

import (
	"context"
	"fmt"
	"time"

	"huddle/internal/platform/logger"
	"huddle/internal/platform/store/pg"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Config selects and configures backends
type Config struct {
	PG PGConfig
}

// PGConfig configures postgres
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	// ConnectTimeout bounds the initial connect retries, default 30s
	ConnectTimeout time.Duration
}

// pgxQuerier is the part of pgx shared by the pool and a transaction
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// querier adapts pgx results to the store interfaces
type querier struct{ db pgxQuerier }

func (q querier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return q.db.Exec(ctx, sql, args...)
}

func (q querier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// pgStore is the pool backed TxRunner
type pgStore struct {
	querier
	pool *pgxpool.Pool
}

func (p *pgStore) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error { return fn(querier{db: tx}) })
}

func (p *pgStore) Ping(ctx context.Context) error { return p.pool.Ping(ctx) }

func (p *pgStore) Close() { p.pool.Close() }

// openPG opens the pool and retries the first ping with backoff so the API can start before postgres
func openPG(ctx context.Context, cfg PGConfig, log logger.Logger) (*pgStore, error) {
	pool, err := pg.Open(ctx, pg.Config{
		URL:      cfg.URL,
		MaxConns: cfg.MaxConns,
		LogSQL:   cfg.LogSQL,
		SlowMs:   cfg.SlowQueryMs,
	}, log)
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 150 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = cfg.ConnectTimeout
	if b.MaxElapsedTime <= 0 {
		b.MaxElapsedTime = 30 * time.Second
	}

	ping := func() error {
		pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return pool.Ping(pctx)
	}
	wait := func(err error, d time.Duration) {
		log.Warn().Err(err).Dur("retry_in", d).Msg("postgres not reachable yet")
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), wait); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &pgStore{querier: querier{db: pool}, pool: pool}, nil
}
