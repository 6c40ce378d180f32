package modkit

import (
	phttp "huddle/internal/platform/net/http"
	str "huddle/internal/platform/strings"
)

// Option adjusts how a module is built
type Option func(*Built)

// Built is the resolved option set a module is constructed from
type Built struct {
	Name   string
	Prefix string
	// Ports replaces module owned dependencies, the concrete type belongs to the module
	Ports any
}

// WithName sets the module name
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the path the module mounts under
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithPorts injects replacement dependencies, mostly fakes in tests
func WithPorts(p any) Option { return func(b *Built) { b.Ports = p } }

// Build applies opts in order, later options win
// it panics when the name or prefix ends up empty
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Name = str.MustString(b.Name, "module name")
	b.Prefix = str.MustPrefix(b.Prefix)
	return b
}

// Mount runs register on a subrouter under the module prefix
func (b Built) Mount(r phttp.Router, register func(phttp.Router)) {
	r.Route(b.Prefix, register)
}
