package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	corsAllowHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, " +
		"X-App-Secret, X-User-ID, X-MCP-Secret, MCP-Protocol-Version, MCP-Session-Id"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsMaxAgeSec    = "600"
)

// trusted clients that send no Origin
var corsUserAgentPrefixes = []string{"GymCoach/", "curl/", "test-agent"}

// Cors admits the configured web origins, the native app and MCP clients.
// Browser preflights are answered here, before the auth check sees them.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[strings.TrimSuffix(o, "/")] = true
	}

	allowed := func(r *http.Request) bool {
		if origins[r.Header.Get("Origin")] || strings.HasPrefix(r.URL.Path, "/mcp") {
			return true
		}
		userAgent := r.Header.Get("User-Agent")
		for _, prefix := range corsUserAgentPrefixes {
			if strings.HasPrefix(userAgent, prefix) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !allowed(r) {
				log.Warnf("cors: rejected origin [%s] for path [%s]", origin, r.URL.Path)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h := w.Header()
			if origin == "" {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Max-Age", corsMaxAgeSec)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
