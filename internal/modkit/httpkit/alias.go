// Package httpkit provides handler and routing helpers that alias the platform
// http package. Use these from modules so they do not import
// internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "anchors/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Page is the pagination metadata type
	Page = phttp.Page

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// List returns a 200 response with items and pagination
func List(items any, total, page, size, pages int) Response {
	return phttp.List(items, total, page, size, pages)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle directly adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return func(w http.ResponseWriter, r *http.Request) { phttp.Handle(fn)(w, r) }
}
