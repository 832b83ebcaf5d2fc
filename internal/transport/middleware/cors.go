package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/loopback-backend/internal/config"
)

// PublicPathPrefix marks routes reachable from any origin. Feedback widgets
// run on customer sites, so ingestion cannot be restricted to the dashboard
// origins and never carries credentials.
const PublicPathPrefix = "/ingest/"

// exposedHeaders are readable by browser clients.
const exposedHeaders = RequestIDHeader + ",Retry-After"

// CORS returns middleware that handles Cross-Origin Resource Sharing for
// the dashboard origins in cfg. Routes under PublicPathPrefix allow any
// origin without credentials. Only real preflights (OPTIONS with
// Access-Control-Request-Method) are answered here; other OPTIONS requests
// reach the router.
func CORS(cfg config.CORSConfig) Middleware {
	var origins []string
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			public := strings.HasPrefix(r.URL.Path, PublicPathPrefix)
			switch {
			case origin == "":
			case public:
				h.Set("Access-Control-Allow-Origin", "*")
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
			case isAllowedOrigin(origin, origins):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if public {
					h.Set("Access-Control-Allow-Methods", "POST,OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Content-Type")
				} else {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				}
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
