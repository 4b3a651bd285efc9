package middleware

import (
	"net/http"
	"strings"

	"anchors/internal/platform/logger"
	pnet "anchors/internal/platform/net"
)

// UserHeader is the header carrying the acting user id.
// The admin frontend sets it after its own authentication; the workflow
// state store is keyed by this value
const UserHeader = "X-User-ID"

// User copies the user header into the request context and logger scope
func User(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := strings.TrimSpace(r.Header.Get(UserHeader))
		if uid != "" {
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uid)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
