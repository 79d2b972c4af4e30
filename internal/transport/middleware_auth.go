package transport

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"ticketvault/internal/auth"
	"ticketvault/internal/domain"
)

// WithAuthProtection resolves the caller from the bearer token:
// 1. Valid token -> identity attached to the request context
// 2. No token -> read-only access (GET, HEAD)
// 3. Invalid token, or a write without a token -> 401
func WithAuthProtection(next http.Handler, verifier auth.Verifier, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				w.Header().Set("X-Access-Type", "Public-Preview")
				next.ServeHTTP(w, r)
				return
			}
			respondError(w, domain.ErrUnauthenticated)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			respondError(w, domain.ErrUnauthenticated)
			return
		}

		id, err := verifier.Verify(r.Context(), token)
		if err != nil {
			log.Warn("rejected bearer token",
				zap.String("request_id", RequestIDFrom(r.Context())),
				zap.Error(err),
			)
			respondError(w, domain.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), id)))
	})
}
