package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/loopback-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// Auth attaches the token's subject as the request principal. Requests
// without a bearer token and requests with an invalid one both continue
// anonymous, so listings answer empty and mutations answer 401 from the
// handlers. Routes under PublicPathPrefix never look at the Authorization
// header.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, PublicPathPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := validator.ValidateAccessToken(token)
			if err != nil || userID == "" {
				logger.DebugContext(r.Context(), "access token rejected",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
