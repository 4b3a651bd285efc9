// Package module wires the link building workflow into the API using modkit
package module

import (
	"net/http"

	modkit "anchors/internal/modkit"
	"anchors/internal/modkit/httpkit"
	analysisdomain "anchors/internal/services/analysis/domain"
	anchorssvc "anchors/internal/services/anchors/service"
	contentdomain "anchors/internal/services/content/domain"
	lbhttp "anchors/internal/services/linkbuilder/http"
	lbsvc "anchors/internal/services/linkbuilder/service"
)

// PortsIn names the upstream ports this module needs at build time
type PortsIn struct {
	Reader    contentdomain.ReaderPort
	Profiles  analysisdomain.ProfilesPort
	Extractor anchorssvc.Service
}

// Ports exposed by the linkbuilder module
type Ports struct {
	Annotator contentdomain.AnnotatorPort
}

// Module implements the linkbuilder module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc lbsvc.Service
}

// New constructs the linkbuilder module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("linkbuilder"),
		modkit.WithPrefix("/linkbuilder"),
	}, opts...)...)

	in, ok := b.Ports.(PortsIn)
	if !ok || in.Reader == nil || in.Profiles == nil || in.Extractor == nil {
		panic("linkbuilder module requires reader, profiles and extractor ports")
	}
	svc := lbsvc.New(in.Reader, in.Profiles, in.Extractor)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Annotator: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		lbhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
