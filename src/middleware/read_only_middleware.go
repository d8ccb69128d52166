package middleware

import (
	"net/http"
)

// ReadOnlyMiddleware rejects writes to the mirror while still accepting logins and
// webhook deliveries.
func ReadOnlyMiddleware(readOnly bool) func(http.Handler) http.Handler {
	allowedPosts := map[string]bool{
		"/api/login":           true,
		"/api/paymill/webhook": true,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if readOnly && r.Method != http.MethodGet && r.Method != http.MethodOptions {
				if r.Method == http.MethodPost && allowedPosts[r.URL.Path] {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "Read-only mode: only GET requests are allowed", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
