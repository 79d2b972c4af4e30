package transport

import (
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"ticketvault/internal/auth"
	"ticketvault/internal/codec"
	"ticketvault/internal/domain"
	"ticketvault/internal/service"
)

const maxBodyBytes = 1 << 20

var searchParams = []string{"q", "category", "min_price", "max_price", "location"}

type ListingHandler struct {
	listings service.ListingStore
	queries  service.QueryService
	log      *zap.Logger
	mux      *http.ServeMux
}

func NewListingHandler(listings service.ListingStore, queries service.QueryService, log *zap.Logger) *ListingHandler {
	h := &ListingHandler{
		listings: listings,
		queries:  queries,
		log:      log,
		mux:      http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *ListingHandler) routes() {
	// Collection routes (matched at root of stripped prefix)
	h.mux.HandleFunc("GET /{$}", h.handleList)
	h.mux.HandleFunc("POST /{$}", h.handleCreate)
	h.mux.HandleFunc("DELETE /{$}", h.handleDeleteByQuery)

	h.mux.HandleFunc("GET /by-seller/{sellerEmail}", h.handleBySeller)

	// Item routes (matched with path value)
	h.mux.HandleFunc("GET /{id}", h.handleGet)
	h.mux.HandleFunc("PUT /{id}", h.handleUpdate)
	h.mux.HandleFunc("DELETE /{id}", h.handleDelete)
}

func (h *ListingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.mux.ServeHTTP(w, r)
}

// fail writes err and logs server-side failures with the request id.
func (h *ListingHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, resp)
}

// handleList lists or searches listings
// @Summary List Events
// @Description List every listing, or search when any filter is given
// @Tags events
// @Produce json
// @Param q query string false "Text matched against title, venue and location"
// @Param category query string false "Category, or 'all'"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param location query string false "Exact location"
// @Success 200 {object} domain.APIResponse{data=[]domain.EventListing}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Failure 500 {object} domain.APIResponse{error=string}
// @Router /events [get]
func (h *ListingHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		listings []domain.EventListing
		err      error
	)
	if hasAny(q, searchParams) {
		var filters domain.Filters
		filters, err = parseFilters(q)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		listings, err = h.queries.Search(r.Context(), q.Get("q"), filters)
	} else {
		listings, err = h.listings.List(r.Context())
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.APIResponse{Data: listings, Meta: &domain.Meta{Count: len(listings)}})
}

// handleBySeller lists the listings of one seller
// @Summary List Events By Seller
// @Description Listings whose sellerEmail matches, ignoring case
// @Tags events
// @Produce json
// @Param sellerEmail path string true "Seller email"
// @Success 200 {object} domain.APIResponse{data=[]domain.EventListing}
// @Failure 500 {object} domain.APIResponse{error=string}
// @Router /events/by-seller/{sellerEmail} [get]
func (h *ListingHandler) handleBySeller(w http.ResponseWriter, r *http.Request) {
	listings, err := h.queries.BySeller(r.Context(), r.PathValue("sellerEmail"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.APIResponse{Data: listings, Meta: &domain.Meta{Count: len(listings)}})
}

// handleGet retrieves a single listing
// @Summary Get Event
// @Description Get details of a specific listing by id
// @Tags events
// @Produce json
// @Param id path int true "Listing id"
// @Success 200 {object} domain.APIResponse{data=domain.EventListing}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /events/{id} [get]
func (h *ListingHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	listing, err := h.listings.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.APIResponse{Data: listing})
}

// handleCreate creates a new listing owned by the caller
// @Summary Create Event
// @Description Create a listing; the caller's email becomes sellerEmail
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventListing true "Listing data"
// @Success 201 {object} domain.APIResponse{data=domain.EventListing}
// @Failure 400 {object} domain.APIResponse{issues=[]domain.Violation}
// @Failure 401 {object} domain.APIResponse{error=string}
// @Failure 500 {object} domain.APIResponse{error=string}
// @Router /events [post]
func (h *ListingHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthenticated)
		return
	}

	fields, err := readFields(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	// Submitted listings always belong to the caller and start unrated.
	fields = fields.Without("rating", "trending")
	if err := fields.Set("sellerEmail", caller.Email); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := fields.Set("isUserListing", true); err != nil {
		h.fail(w, r, err)
		return
	}

	listing, err := h.listings.Create(r.Context(), fields)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.APIResponse{Data: listing})
}

// handleUpdate patches a listing owned by the caller
// @Summary Update Event
// @Description Merge the given fields into a listing and re-validate it
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing id"
// @Param event body map[string]interface{} true "Fields to update"
// @Success 200 {object} domain.APIResponse{data=domain.EventListing}
// @Failure 400 {object} domain.APIResponse{issues=[]domain.Violation}
// @Failure 401 {object} domain.APIResponse{error=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Failure 500 {object} domain.APIResponse{error=string}
// @Router /events/{id} [put]
func (h *ListingHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthenticated)
		return
	}
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	patch, err := readFields(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(patch) == 0 {
		h.fail(w, r, domain.ErrValidation("body", "no fields to update"))
		return
	}

	listing, err := h.listings.Update(r.Context(), id, patch, caller.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.APIResponse{Data: listing})
}

// handleDelete deletes a listing owned by the caller
// @Summary Delete Event
// @Description Remove a listing by id
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing id"
// @Success 200 {object} domain.APIResponse{data=string}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Failure 401 {object} domain.APIResponse{error=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /events/{id} [delete]
func (h *ListingHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, r.PathValue("id"))
}

// handleDeleteByQuery deletes a listing named by the id query parameter
// @Summary Delete Event (query form)
// @Description Remove a listing by id given as a query parameter
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id query int true "Listing id"
// @Success 200 {object} domain.APIResponse{data=string}
// @Failure 400 {object} domain.APIResponse{error=string}
// @Failure 401 {object} domain.APIResponse{error=string}
// @Failure 404 {object} domain.APIResponse{error=string}
// @Router /events [delete]
func (h *ListingHandler) handleDeleteByQuery(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		h.fail(w, r, domain.ErrValidation("id", "is required"))
		return
	}
	h.delete(w, r, raw)
}

func (h *ListingHandler) delete(w http.ResponseWriter, r *http.Request, rawID string) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		h.fail(w, r, domain.ErrUnauthenticated)
		return
	}
	id, err := parseID(rawID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.listings.Delete(r.Context(), id, caller.Email); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.APIResponse{Data: "Deleted successfully"})
}

func readFields(w http.ResponseWriter, r *http.Request) (codec.Fields, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.ErrValidation("body", "could not be read")
	}
	fields, err := codec.ParseFields(body)
	if err != nil {
		return nil, domain.ErrValidation("body", "must be a JSON object")
	}
	return fields, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation("id", "must be a positive integer")
	}
	return id, nil
}

func parseFilters(q url.Values) (domain.Filters, error) {
	f := domain.Filters{
		Category: q.Get("category"),
		Location: q.Get("location"),
	}

	var violations []domain.Violation
	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			violations = append(violations, domain.Violation{Field: p.name, Message: "must be a valid number"})
			continue
		}
		*p.dst = &v
	}
	if len(violations) > 0 {
		return f, &domain.ValidationError{Violations: violations}
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return f, domain.ErrValidation("min_price", "cannot be greater than max_price")
	}
	return f, nil
}

func hasAny(q url.Values, keys []string) bool {
	for _, k := range keys {
		if q.Has(k) {
			return true
		}
	}
	return false
}
