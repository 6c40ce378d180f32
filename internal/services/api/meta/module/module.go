// Package module mounts the meta endpoints
package module

import (
	"time"

	modkit "huddle/internal/modkit"
	"huddle/internal/modkit/httpkit"

	metahttp "huddle/internal/services/api/meta/http"
)

// Module serves /meta
type Module struct {
	built modkit.Built
	deps  metahttp.Deps
}

// New builds the meta module, readiness pings deps.PG when it supports Ping
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{Started: time.Now()}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		d.DB = p
	}
	return &Module{built: b, deps: d}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }
