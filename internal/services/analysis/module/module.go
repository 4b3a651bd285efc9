// Package module wires the analysis service. Ports only, no routes
package module

import (
	modkit "anchors/internal/modkit"
	"anchors/internal/modkit/httpkit"
	"anchors/internal/services/analysis/domain"
	analysissvc "anchors/internal/services/analysis/service"
	contentdomain "anchors/internal/services/content/domain"
)

// PortsIn names the upstream ports this module needs at build time
type PortsIn struct {
	Reader contentdomain.ReaderPort
}

// Ports exposed by the analysis module
type Ports struct {
	Profiles domain.ProfilesPort
}

// Module implements the analysis module
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// New constructs the analysis module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analysis")}, opts...)...)

	in, ok := b.Ports.(PortsIn)
	if !ok || in.Reader == nil {
		panic("analysis module requires a content reader port")
	}

	m := &Module{deps: deps, name: b.Name}
	m.ports = Ports{Profiles: analysissvc.New(in.Reader)}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; analysis has no HTTP surface
func (m *Module) MountRoutes(r httpkit.Router) {}
