// Package middleware holds the HTTP layers wrapped around the REST router:
// panic recovery, request ids, access logging, CORS, bearer authentication,
// per-request deadlines and ingestion rate limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost. Nil entries are skipped,
// which lets callers pass optional layers unconditionally.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}
