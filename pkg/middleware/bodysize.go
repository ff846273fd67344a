package middleware

import "net/http"

// MaxBodySize returns middleware that caps request body reads at limit
// bytes. Handlers reading past the limit receive an error from the body
// and the connection is closed. A non-positive limit disables the cap.
func MaxBodySize(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
