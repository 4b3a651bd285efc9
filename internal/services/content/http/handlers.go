// Package http provides http transport for content
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"anchors/internal/modkit/httpkit"
	"anchors/internal/modkit/module"
	"anchors/internal/platform/logger"
	"anchors/internal/services/content/domain"
	svc "anchors/internal/services/content/service"
)

// Register mounts content endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// title or body search over published documents
	httpkit.Get(r, "/search", h.search)

	// single document with cleaned body text
	httpkit.Get(r, "/documents/{id}", h.document)
}

type handlers struct{ svc svc.Service }

func (h *handlers) search(r *stdhttp.Request) (any, error) {
	in := domain.SearchInput{
		Keyword:   strings.TrimSpace(r.URL.Query().Get("kw")),
		InBody:    httpkit.QueryBool(r, "in_body"),
		Page:      httpkit.QueryInt(r, "page", 1),
		Exclude:   parseIDList(r.URL.Query().Get("exclude")),
		ContextID: httpkit.QueryInt64(r, "context_id", 0),
		Canonical: strings.TrimSpace(r.URL.Query().Get("canonical")),
	}
	if in.Keyword == "" {
		return domain.SearchPage{Items: []domain.SearchItem{}}, nil
	}

	page, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	h.annotate(r, in, &page)
	return page, nil
}

// annotate attaches cannibalization scores when a reference document and
// canonical keyword were given and the annotator module is mounted
func (h *handlers) annotate(r *stdhttp.Request, in domain.SearchInput, page *domain.SearchPage) {
	if in.ContextID <= 0 || in.Canonical == "" {
		return
	}
	ann, ok := module.PortsAs[domain.AnnotatorPort](domain.AnnotatorModule)
	if !ok {
		return
	}
	for i := range page.Items {
		score, err := ann.Annotate(r.Context(), page.Items[i].ID, in.ContextID, in.Canonical)
		if err != nil {
			// a single unreadable candidate must not fail the whole search
			logger.C(r.Context()).Debug().Err(err).
				Int64("document_id", page.Items[i].ID).
				Msg("cannibalization annotation skipped")
			continue
		}
		sc := score
		page.Items[i].Cannibalization = &sc
	}
}

func (h *handlers) document(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamInt64(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Detail(r.Context(), id)
}

// parseIDList splits a comma separated id list, dropping blanks and junk
func parseIDList(raw string) []int64 {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		out = append(out, id)
	}
	return out
}
