// Package modkit provides module wiring and core deps
package modkit

import (
	"huddle/internal/modkit/repokit"
	"huddle/internal/platform/config"
	"huddle/internal/platform/logger"
)

// Deps holds what every module is constructed from
// PG is nil when the store is disabled or a module runs on injected ports
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
