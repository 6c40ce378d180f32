package module

import (
	"time"

	"huddle/internal/platform/config"
	schedsvc "huddle/internal/services/schedule/service"
)

// Options controls schedule behavior
type Options struct {
	FetchConcurrency int           // parallel per user commitment fetches
	MaxWindow        time.Duration // widest accepted query window
	StatementTimeout time.Duration // per statement bound on commitment reads, 0 for none
}

// FromConfig reads SCHEDULE_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SCHEDULE_")
	return Options{
		FetchConcurrency: sc.MayInt("FETCH_CONCURRENCY", 8),
		MaxWindow:        sc.MayDuration("MAX_WINDOW", 366*24*time.Hour),
		StatementTimeout: sc.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}
}

func (o Options) service() schedsvc.Config {
	return schedsvc.Config{FetchConcurrency: o.FetchConcurrency, MaxWindow: o.MaxWindow}
}
