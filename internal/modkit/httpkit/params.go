package httpkit

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	perr "anchors/internal/platform/errors"
)

// Param returns a named path parameter
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// ParamInt64 parses a named path parameter as a positive int64
func ParamInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perr.InvalidArgf("invalid %s %q", name, raw)
	}
	return id, nil
}

// QueryInt parses an integer query parameter, returning def when absent or bad
func QueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// QueryInt64 parses an int64 query parameter, returning def when absent or bad
func QueryInt64(r *http.Request, name string, def int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return v
}

// QueryBool parses a flag query parameter ("1", "true" are truthy)
func QueryBool(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}
