// Package http provides http transport for the link building workflow
package http

import (
	stdhttp "net/http"

	"anchors/internal/modkit/httpkit"
	"anchors/internal/services/linkbuilder/domain"
	svc "anchors/internal/services/linkbuilder/service"
)

// Register mounts workflow endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// current workflow state
	httpkit.Get(r, "/state", h.state)

	// discard the workflow
	httpkit.Post(r, "/reset", h.reset)

	// step selections
	httpkit.PostJSON[domain.SetMotherInput](r, "/mother", h.setMother)
	httpkit.PostJSON[domain.SetDaughtersInput](r, "/daughters", h.setDaughters)
	httpkit.PostJSON[domain.SetGranddaughtersInput](r, "/granddaughters", h.setGranddaughters)

	// rendered link plan
	httpkit.Get(r, "/export", h.export)
}

type handlers struct{ svc svc.Service }

func (h *handlers) state(r *stdhttp.Request) (any, error) {
	return h.svc.State(r.Context())
}

func (h *handlers) reset(r *stdhttp.Request) (any, error) {
	return h.svc.Reset(r.Context())
}

func (h *handlers) setMother(r *stdhttp.Request, in domain.SetMotherInput) (any, error) {
	return h.svc.SetMother(r.Context(), in)
}

func (h *handlers) setDaughters(r *stdhttp.Request, in domain.SetDaughtersInput) (any, error) {
	return h.svc.SetDaughters(r.Context(), in)
}

func (h *handlers) setGranddaughters(r *stdhttp.Request, in domain.SetGranddaughtersInput) (any, error) {
	return h.svc.SetGranddaughters(r.Context(), in)
}

func (h *handlers) export(r *stdhttp.Request) (any, error) {
	return h.svc.Export(r.Context())
}
