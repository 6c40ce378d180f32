// Package pg opens the pgx pool
package pg

import (
	"context"

	"huddle/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32
	// LogSQL traces every statement, SlowMs marks slow ones at warn level
	LogSQL bool
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg into a pool, it does not wait for the server
func Open(ctx context.Context, cfg Config, log logger.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.LogSQL {
		pcfg.ConnConfig.Tracer = NewTracer(log, cfg.SlowMs)
	}
	return newPool(ctx, pcfg)
}
