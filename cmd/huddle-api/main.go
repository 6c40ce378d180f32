// @title         Huddle API
// @version       0.1.0
// @description   Conflict detection, availability and busy time for calendar events

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"huddle/internal/platform/config"
	"huddle/internal/platform/logger"
	phttp "huddle/internal/platform/net/http"
	"huddle/internal/platform/store"

	"huddle/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("API_") // API_SWAGGER, API_PROFILER, API_CORS_ORIGINS
	pgCfg := root.Prefix("PG_")   // PG_URL, PG_MAX_CONNS, ...

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		ctx,
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("URL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	gctx, gcancel := context.WithTimeout(ctx, 3*time.Second)
	if err := st.Guard(gctx); err != nil {
		l.Warn().Err(err).Msg("store guard failed, /meta/ready will report it")
	}
	gcancel()

	// http server (reads API_PORT)
	srv := phttp.NewServer(root)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
		},
	)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
