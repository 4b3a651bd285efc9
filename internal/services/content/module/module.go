// Package module wires content into the API using modkit
package module

import (
	"net/http"

	modkit "anchors/internal/modkit"
	"anchors/internal/modkit/httpkit"
	"anchors/internal/services/content/domain"
	contenthttp "anchors/internal/services/content/http"
	contentrepo "anchors/internal/services/content/repo"
	contentsvc "anchors/internal/services/content/service"
)

// Ports exposed by the content module
type Ports struct {
	Reader   domain.ReaderPort
	Searcher domain.SearcherPort
}

// Module implements the content module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc contentsvc.Service
}

// New constructs the content module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("content")}, opts...)...)

	repo := contentrepo.NewPG(deps.PG)
	svc := contentsvc.New(repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Reader: svc, Searcher: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		contenthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	}
	if m.prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(m.prefix, mount)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
