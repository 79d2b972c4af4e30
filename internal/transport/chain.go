package transport

import (
	"net/http"

	"go.uber.org/zap"

	"ticketvault/internal/auth"
)

type ChainOptions struct {
	Verifier      auth.Verifier
	Logger        *zap.Logger
	AllowedOrigin string
	Production    bool
}

// Chain wraps router in the middleware stack, outermost first: CORS,
// security headers, request id, access log, identity, compression.
func Chain(router http.Handler, opts ChainOptions) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	h := WithCompression(router)
	h = WithAuthProtection(h, opts.Verifier, log)
	h = WithAccessLog(h, log)
	h = WithRequestID(h)
	h = WithSecurityHeaders(h, opts.Production)
	return WithCORS(h, opts.AllowedOrigin)
}
