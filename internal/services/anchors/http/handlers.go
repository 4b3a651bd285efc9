// Package http provides http transport for anchor extraction
package http

import (
	stdhttp "net/http"

	"anchors/internal/modkit/httpkit"
	"anchors/internal/services/anchors/domain"
	svc "anchors/internal/services/anchors/service"
)

// Register mounts anchor endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// mine anchors for a canonical phrase from one document
	httpkit.PostJSON[domain.ExtractInput](r, "/extract", h.extract)

	// quota preset lookup by word count
	httpkit.Get(r, "/presets", h.presets)
}

type handlers struct{ svc svc.Service }

func (h *handlers) extract(r *stdhttp.Request, in domain.ExtractInput) (any, error) {
	return h.svc.Extract(r.Context(), in)
}

func (h *handlers) presets(r *stdhttp.Request) (any, error) {
	words := httpkit.QueryInt(r, "words", 0)
	return h.svc.Presets(words), nil
}
