package capability

import "net/http"

// Middleware runs detection once per request and injects the result into the
// request context, so downstream handlers share a single detection instead
// of each calling Detect.
func Middleware(e *Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caps := e.Detect(r)
			ctx := SetToContext(r.Context(), caps)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
