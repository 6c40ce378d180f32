package modkit

import (
	phttp "huddle/internal/platform/net/http"
)

// Module is one mountable slice of the API
type Module interface {
	// MountRoutes registers the module routes under its prefix
	MountRoutes(r phttp.Router)
	// Name identifies the module in logs
	Name() string
}
