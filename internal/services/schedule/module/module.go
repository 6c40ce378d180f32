// Package module wires the schedule service into the API using modkit
package module

import (
	"time"

	modkit "huddle/internal/modkit"
	"huddle/internal/modkit/httpkit"
	"huddle/internal/modkit/repokit"
	"huddle/internal/services/schedule/domain"
	schedhttp "huddle/internal/services/schedule/http"
	schedrepo "huddle/internal/services/schedule/repo"
	schedsvc "huddle/internal/services/schedule/service"
)

// Module serves /schedule
type Module struct {
	built modkit.Built
	svc   schedsvc.Service
}

// Ports may be injected to replace the postgres commitments source
type Ports struct {
	Source domain.CommitmentSource
}

// New constructs the schedule module
// without injected Ports it reads commitments from deps.PG and panics when that is nil
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("schedule"),
		modkit.WithPrefix("/schedule"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var svc schedsvc.Service
	if p, ok := b.Ports.(Ports); ok && p.Source != nil {
		svc = schedsvc.NewWithSource(p.Source, cfg.service())
	} else {
		svc = schedsvc.New(readOnly(deps.PG, cfg.StatementTimeout), schedrepo.NewPG(), cfg.service())
	}
	return &Module{built: b, svc: svc}
}

// readOnly wraps db so every commitments fetch opens a read only transaction
func readOnly(db repokit.TxRunner, timeout time.Duration) repokit.TxRunner {
	if db == nil {
		return nil
	}
	return repokit.WithBeginHooks(db, schedrepo.ReadOnly(timeout))
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { schedhttp.Register(rr, m.svc) })
}

// Name implements modkit.Module
func (m *Module) Name() string { return m.built.Name }
