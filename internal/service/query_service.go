package service

import (
	"context"
	"strings"

	"ticketvault/internal/codec"
	"ticketvault/internal/domain"
)

// ListingStore is the storage surface the HTTP layer depends on.
type ListingStore interface {
	List(ctx context.Context) ([]domain.EventListing, error)
	Get(ctx context.Context, id int64) (*domain.EventListing, error)
	Create(ctx context.Context, fields codec.Fields) (*domain.EventListing, error)
	Update(ctx context.Context, id int64, patch codec.Fields, owner string) (*domain.EventListing, error)
	Delete(ctx context.Context, id int64, owner string) error
}

type ListingReader interface {
	List(ctx context.Context) ([]domain.EventListing, error)
}

type QueryService interface {
	BySeller(ctx context.Context, email string) ([]domain.EventListing, error)
	Search(ctx context.Context, text string, filters domain.Filters) ([]domain.EventListing, error)
}

type queryService struct {
	listings ListingReader
}

func NewQueryService(listings ListingReader) QueryService {
	return &queryService{listings: listings}
}

func (s *queryService) BySeller(ctx context.Context, email string) ([]domain.EventListing, error) {
	email = strings.TrimSpace(email)
	return s.filter(ctx, func(l domain.EventListing) bool {
		return email != "" && strings.EqualFold(l.SellerEmail, email)
	})
}

// Search matches text against title, venue and location and then applies
// every filter that is set.
func (s *queryService) Search(ctx context.Context, text string, f domain.Filters) ([]domain.EventListing, error) {
	var preds []func(domain.EventListing) bool

	if text = strings.ToLower(strings.TrimSpace(text)); text != "" {
		preds = append(preds, func(l domain.EventListing) bool {
			return strings.Contains(strings.ToLower(l.Title), text) ||
				strings.Contains(strings.ToLower(l.Venue), text) ||
				strings.Contains(strings.ToLower(l.Location), text)
		})
	}
	if c := strings.TrimSpace(f.Category); c != "" && !strings.EqualFold(c, domain.CategoryAll) {
		preds = append(preds, func(l domain.EventListing) bool {
			return strings.EqualFold(l.Category, c)
		})
	}
	if f.MinPrice != nil {
		lo := *f.MinPrice
		preds = append(preds, func(l domain.EventListing) bool { return l.Price >= lo })
	}
	if f.MaxPrice != nil {
		hi := *f.MaxPrice
		preds = append(preds, func(l domain.EventListing) bool { return l.Price <= hi })
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		preds = append(preds, func(l domain.EventListing) bool {
			return strings.EqualFold(l.Location, loc)
		})
	}

	return s.filter(ctx, func(l domain.EventListing) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	})
}

func (s *queryService) filter(ctx context.Context, keep func(domain.EventListing) bool) ([]domain.EventListing, error) {
	all, err := s.listings.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EventListing, 0, len(all))
	for _, l := range all {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out, nil
}
