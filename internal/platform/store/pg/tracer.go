package pg

import (
	"context"
	"strings"
	"time"

	"huddle/internal/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Tracer logs each statement with its duration through pgx's tracing hook
type Tracer struct {
	log  logger.Logger
	slow time.Duration
}

// NewTracer logs at debug level regardless of the process level, slowMs <= 0 never warns
func NewTracer(log logger.Logger, slowMs int) *Tracer {
	return &Tracer{
		log:  log.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: time.Duration(slowMs) * time.Millisecond,
	}
}

type traceKey struct{}

type trace struct {
	sql   string
	args  []any
	start time.Time
}

// TraceQueryStart implements pgx.QueryTracer
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, trace{sql: d.SQL, args: d.Args, start: time.Now()})
}

// TraceQueryEnd implements pgx.QueryTracer
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryEndData) {
	tr, ok := ctx.Value(traceKey{}).(trace)
	if !ok {
		return
	}
	took := time.Since(tr.start)
	slow := t.slow > 0 && took >= t.slow

	evt := t.log.Debug()
	if slow {
		evt = t.log.Warn()
	}
	evt.Str("sql", strings.Join(strings.Fields(tr.sql), " ")).
		Interface("args", tr.args).
		Dur("took", took).
		Bool("slow", slow).
		Int64("rows", d.CommandTag.RowsAffected()).
		Err(d.Err).
		Msg("pg query")
}
