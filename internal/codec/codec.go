// Package codec defines the canonical EventListing shape and rejects
// malformed listing payloads before they reach the store.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"ticketvault/internal/domain"
)

// DefaultSeller is used when a listing does not name its seller.
const DefaultSeller = "Anonymous"

const tagUserListingEmail = "required_for_user_listing"

// candidate mirrors EventListing with pointer fields so that "absent" and
// "zero" can be told apart.
type candidate struct {
	Title            *string    `json:"title" validate:"required"`
	Date             *string    `json:"date" validate:"required"`
	Time             *string    `json:"time"`
	Venue            *string    `json:"venue" validate:"required"`
	Location         *string    `json:"location" validate:"required"`
	Price            *float64   `json:"price" validate:"required,gte=0"`
	OriginalPrice    *float64   `json:"originalPrice" validate:"required,gte=0"`
	Image            *string    `json:"image"`
	Category         *string    `json:"category" validate:"required"`
	Rating           *float64   `json:"rating" validate:"omitempty,gte=0,lte=5"`
	SoldCount        *int       `json:"soldCount" validate:"omitempty,gte=0"`
	Trending         *bool      `json:"trending"`
	AvailableTickets *int       `json:"availableTickets" validate:"required,gte=0"`
	TransferMethod   *string    `json:"transferMethod"`
	Description      *string    `json:"description" validate:"required"`
	LongDescription  *string    `json:"longDescription"`
	Highlights       []string   `json:"highlights"`
	VenueInfo        *venueInfo `json:"venue_info"`
	Section          *string    `json:"section"`
	Row              *string    `json:"row"`
	Seats            *string    `json:"seats"`
	Seller           *string    `json:"seller"`
	SellerEmail      *string    `json:"sellerEmail" validate:"omitempty,email"`
	IsUserListing    *bool      `json:"isUserListing"`
	CreatedAt        *time.Time `json:"createdAt"`
}

type venueInfo struct {
	Address       *string `json:"address" validate:"required"`
	Capacity      *string `json:"capacity"`
	Parking       *string `json:"parking"`
	Accessibility *string `json:"accessibility"`
}

// Codec validates listing payloads. It is safe for concurrent use.
type Codec struct {
	validate *validator.Validate
}

// New builds a Codec with its validator rules registered.
func New() *Codec {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(userListingRule, candidate{})
	return &Codec{validate: v}
}

// userListingRule requires a seller email on listings submitted by users.
func userListingRule(sl validator.StructLevel) {
	c := sl.Current().Interface().(candidate)
	if c.IsUserListing != nil && !*c.IsUserListing {
		return
	}
	if c.SellerEmail == nil {
		sl.ReportError(c.SellerEmail, "sellerEmail", "SellerEmail", tagUserListingEmail, "")
	}
}

// Validate checks a payload and returns the listing it describes with
// defaults filled in. The returned listing has no id; identifiers belong to
// the store. Every violation is reported at once in a *domain.ValidationError.
func (c *Codec) Validate(fields Fields) (*domain.EventListing, error) {
	d := &decoder{fields: fields, failed: map[string]bool{}}
	cand := d.decode()

	if err := c.validate.Struct(cand); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate listing: %w", err)
		}
		for _, fe := range verrs {
			path := fieldPath(fe)
			if d.failed[path] {
				continue
			}
			d.violations = append(d.violations, domain.Violation{Field: path, Message: message(fe)})
		}
	}

	if len(d.violations) > 0 {
		return nil, &domain.ValidationError{Violations: d.violations}
	}
	return build(cand), nil
}

func build(c candidate) *domain.EventListing {
	l := &domain.EventListing{
		Title:            deref(c.Title),
		Date:             deref(c.Date),
		Time:             deref(c.Time),
		Venue:            deref(c.Venue),
		Location:         deref(c.Location),
		Price:            deref(c.Price),
		OriginalPrice:    deref(c.OriginalPrice),
		Image:            deref(c.Image),
		Category:         deref(c.Category),
		Rating:           deref(c.Rating),
		SoldCount:        deref(c.SoldCount),
		Trending:         deref(c.Trending),
		AvailableTickets: deref(c.AvailableTickets),
		TransferMethod:   deref(c.TransferMethod),
		Description:      deref(c.Description),
		LongDescription:  deref(c.LongDescription),
		Highlights:       c.Highlights,
		Section:          deref(c.Section),
		Row:              deref(c.Row),
		Seats:            deref(c.Seats),
		Seller:           deref(c.Seller),
		SellerEmail:      deref(c.SellerEmail),
		IsUserListing:    true,
		CreatedAt:        deref(c.CreatedAt),
	}
	if c.IsUserListing != nil {
		l.IsUserListing = *c.IsUserListing
	}
	if strings.TrimSpace(l.Seller) == "" {
		l.Seller = DefaultSeller
	}
	if c.VenueInfo != nil {
		l.VenueInfo = &domain.VenueInfo{
			Address:       deref(c.VenueInfo.Address),
			Capacity:      deref(c.VenueInfo.Capacity),
			Parking:       deref(c.VenueInfo.Parking),
			Accessibility: deref(c.VenueInfo.Accessibility),
		}
	}
	return l
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// fieldPath turns "candidate.venue_info.address" into "venue_info.address".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case tagUserListingEmail:
		return "is required for user listings"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// decoder converts raw fields into a candidate, recording type violations.
type decoder struct {
	fields     Fields
	violations []domain.Violation
	failed     map[string]bool
}

func (d *decoder) fail(path, msg string) {
	d.failed[path] = true
	d.violations = append(d.violations, domain.Violation{Field: path, Message: msg})
}

func (d *decoder) decode() candidate {
	f := d.fields
	c := candidate{
		Title:            field[string](d, f, "", "title", "a string"),
		Date:             field[string](d, f, "", "date", "a string"),
		Time:             field[string](d, f, "", "time", "a string"),
		Venue:            field[string](d, f, "", "venue", "a string"),
		Location:         field[string](d, f, "", "location", "a string"),
		Price:            field[float64](d, f, "", "price", "a number"),
		OriginalPrice:    field[float64](d, f, "", "originalPrice", "a number"),
		Image:            field[string](d, f, "", "image", "a string"),
		Category:         field[string](d, f, "", "category", "a string"),
		Rating:           field[float64](d, f, "", "rating", "a number"),
		SoldCount:        field[int](d, f, "", "soldCount", "an integer"),
		Trending:         field[bool](d, f, "", "trending", "a boolean"),
		AvailableTickets: field[int](d, f, "", "availableTickets", "an integer"),
		TransferMethod:   field[string](d, f, "", "transferMethod", "a string"),
		Description:      field[string](d, f, "", "description", "a string"),
		LongDescription:  field[string](d, f, "", "longDescription", "a string"),
		Section:          field[string](d, f, "", "section", "a string"),
		Row:              field[string](d, f, "", "row", "a string"),
		Seats:            field[string](d, f, "", "seats", "a string"),
		Seller:           field[string](d, f, "", "seller", "a string"),
		SellerEmail:      field[string](d, f, "", "sellerEmail", "a string"),
		IsUserListing:    field[bool](d, f, "", "isUserListing", "a boolean"),
		CreatedAt:        field[time.Time](d, f, "", "createdAt", "an RFC 3339 timestamp"),
	}
	if h := field[[]string](d, f, "", "highlights", "an array of strings"); h != nil {
		c.Highlights = *h
	}
	if c.SellerEmail != nil {
		email := strings.TrimSpace(*c.SellerEmail)
		if email == "" {
			c.SellerEmail = nil
		} else {
			c.SellerEmail = &email
		}
	}
	if nested := field[Fields](d, f, "", "venue_info", "an object"); nested != nil {
		vf := *nested
		c.VenueInfo = &venueInfo{
			Address:       field[string](d, vf, "venue_info.", "address", "a string"),
			Capacity:      field[string](d, vf, "venue_info.", "capacity", "a string"),
			Parking:       field[string](d, vf, "venue_info.", "parking", "a string"),
			Accessibility: field[string](d, vf, "venue_info.", "accessibility", "a string"),
		}
	}
	return c
}

// field decodes one key. Absent keys and JSON null yield nil.
func field[T any](d *decoder, f Fields, prefix, name, want string) *T {
	raw, ok := f[name]
	if !ok || isNull(raw) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		d.fail(prefix+name, "must be "+want)
		return nil
	}
	return &v
}
