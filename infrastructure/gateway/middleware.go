package gateway

import (
	"fmt"
	"messager/auth"
	"messager/errors"
	"net/http"
)

// requireBearer is the HTTP twin of auth.AuthInterceptor.
func (g *Gateway) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			g.writeError(w, fmt.Errorf("%w: authorization token is missing", errors.ErrUnauthenticated))
			return
		}
		claims, err := g.issuer.ValidateToken(auth.BearerToken(header))
		if err != nil {
			g.writeError(w, fmt.Errorf("%w: invalid or expired token", errors.ErrUnauthenticated))
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}
