// Package api provides the HTTP API for the application
package api

import (
	"huddle/internal/platform/config"
	"huddle/internal/platform/logger"
	phttp "huddle/internal/platform/net/http"
	"huddle/internal/platform/store"

	"huddle/internal/modkit"
	"huddle/internal/modkit/httpkit"
	"huddle/internal/modkit/swaggerkit"

	metamod "huddle/internal/services/api/meta/module"
	schedmod "huddle/internal/services/schedule/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string

	// Modules replaces the default module set when non empty
	Modules []modkit.Module
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	mods := opt.Modules
	if len(mods) == 0 {
		// shared deps for modules
		deps := modkit.Deps{Cfg: opt.Config}
		if opt.Store != nil {
			deps.PG = opt.Store.PG
		}
		if opt.Logger != nil {
			deps.Log = *opt.Logger
		}
		mods = []modkit.Module{
			metamod.New(deps),
			schedmod.New(deps),
		}
	}

	// Swagger + profiler live outside the versioned scope
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	log := logger.Named("api")
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.CORSOrigins...), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
