package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ticketvault/internal/domain"
	"ticketvault/internal/service"
)

// NewRouter initializes the main HTTP handler using Go 1.22+ ServeMux
func NewRouter(listings service.ListingStore, queries service.QueryService, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	mux := http.NewServeMux()

	// /events and /events/ reach the same collection routes.
	listingHandler := NewListingHandler(listings, queries, log)
	mux.Handle("/events/", mount("/events", listingHandler))
	mux.Handle("/events", mount("/events", listingHandler))

	mux.HandleFunc("GET /health", handleHealth)

	return mux
}

func mount(prefix string, h http.Handler) http.Handler {
	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" {
			r.URL.Path = "/"
		}
		h.ServeHTTP(w, r)
	}))
}

// handleHealth reports liveness
// @Summary Health
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} domain.APIResponse{data=map[string]string}
// @Router /health [get]
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.APIResponse{Data: map[string]string{"status": "ok"}})
}

func writeJSON(w http.ResponseWriter, status int, resp domain.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// statusFor is the single translation from domain errors to HTTP.
func statusFor(err error) (int, domain.APIResponse) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, domain.APIResponse{Error: "validation failed", Issues: verr.Violations}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		// Listings owned by someone else are indistinguishable from missing ones.
		return http.StatusNotFound, domain.APIResponse{Error: domain.ErrNotFound.Error()}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, domain.APIResponse{Error: domain.ErrUnauthenticated.Error()}
	case domain.IsStorageError(err):
		return http.StatusInternalServerError, domain.APIResponse{Error: "storage unavailable"}
	default:
		return http.StatusInternalServerError, domain.APIResponse{Error: "internal server error"}
	}
}

func respondError(w http.ResponseWriter, err error) {
	status, resp := statusFor(err)
	writeJSON(w, status, resp)
}
