// Package logger wraps zerolog with a process root logger and request scoped children
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"huddle/internal/platform/config/raw"

	"github.com/rs/zerolog"
)

// Logger is the logging type used across huddle
type Logger = zerolog.Logger

// Options configures New
type Options struct {
	// Level is a zerolog level name, unknown names mean info
	Level string
	// Format is console for humans, anything else writes JSON lines
	Format  string
	Service string
	Caller  bool
	// Writer defaults to stdout
	Writer io.Writer
}

// New builds a logger from opt
func New(opt Options) Logger {
	lvl, err := zerolog.ParseLevel(opt.Level)
	if err != nil || opt.Level == "" {
		lvl = zerolog.InfoLevel
	}
	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if opt.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// fromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE and LOG_CALLER
// config depends on logger, so this goes through raw
func fromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:   env.Get("LEVEL", "info"),
		Format:  env.Get("FORMAT", "console"),
		Service: env.Get("SERVICE", "huddle-api"),
		Caller:  env.GetBool("CALLER", false),
	}
}

var root = sync.OnceValue(func() *Logger {
	l := New(fromEnv())
	return &l
})

// Get returns the process root logger, built from the environment on first use
func Get() *Logger { return root() }

type requestKey struct{}

// WithRequest tags ctx with a request id that C adds to every line
func WithRequest(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestKey{}, id)
}

// C returns the root logger with the request id from ctx, if any
func C(ctx context.Context) *Logger {
	id, _ := ctx.Value(requestKey{}).(string)
	if id == "" {
		return Get()
	}
	l := Get().With().Str("request_id", id).Logger()
	return &l
}

// Named returns the root logger with a component field
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}
