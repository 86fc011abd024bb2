package middleware

import "net/http"

// Vary adds Accept to the Vary header of every response. Only /health and
// problem-detail responses (404, 405, 500) switch between JSON and CBOR on
// Accept; GET / is always HTML, but it shares the router with those and a
// wrong method on / yields a negotiated 405. CORS adds Origin on its own.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
