package middleware

import "net/http"

// VaryCookie marks dynamic responses as dependent on cookies: every page embeds the cart
// badge read from the cart cookie, so shared caches must not reuse them across shoppers.
func VaryCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Cookie")
		w.Header().Set("Cache-Control", "private, no-cache")
		next.ServeHTTP(w, r)
	})
}
