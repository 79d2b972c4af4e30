package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketvault/internal/domain"
	"ticketvault/internal/repository"
	"ticketvault/internal/service"
	"ticketvault/internal/store"
)

// MockListingReader implements service.ListingReader.
type MockListingReader struct {
	ListFunc func(ctx context.Context) ([]domain.EventListing, error)
}

func (m *MockListingReader) List(ctx context.Context) ([]domain.EventListing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func catalog() []domain.EventListing {
	return []domain.EventListing{
		{ID: 1, Title: "Taylor Swift - Eras Tour", Venue: "Madison Square Garden", Location: "New York, NY", Category: "Concert", Price: 150},
		{ID: 2, Title: "Avengers: Secret Wars", Venue: "AMC Empire 25", Location: "New York, NY", Category: "Movie", Price: 25},
		{ID: 3, Title: "Lakers vs Warriors", Venue: "Crypto.com Arena", Location: "Los Angeles, CA", Category: "Sports", Price: 120},
		{ID: 4, Title: "Test Show", Venue: "Hall", Location: "City", Category: "concert", Price: 50, SellerEmail: "a@x.com"},
		{ID: 5, Title: "Other Show", Venue: "Garden Hall", Location: "City", Category: "Theater", Price: 80, SellerEmail: "b@x.com"},
		{ID: 6, Title: "Late Show", Venue: "Hall", Location: "City", Category: "Comedy", Price: 40, SellerEmail: "A@X.COM"},
	}
}

func newService() service.QueryService {
	return service.NewQueryService(&MockListingReader{
		ListFunc: func(ctx context.Context) ([]domain.EventListing, error) { return catalog(), nil },
	})
}

func ids(listings []domain.EventListing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func price(v float64) *float64 { return &v }

func TestBySeller_CaseInsensitive(t *testing.T) {
	got, err := newService().BySeller(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 6}, ids(got))
}

func TestBySeller_NoMatchIsEmptyNotNil(t *testing.T) {
	got, err := newService().BySeller(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = newService().BySeller(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got, "seed listings without an email must not match a blank seller")
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		filters domain.Filters
		want    []int64
	}{
		{"NoCriteria", "", domain.Filters{}, []int64{1, 2, 3, 4, 5, 6}},
		{"AllCategoryFullRange", "", domain.Filters{Category: "all", MinPrice: price(0), MaxPrice: price(math.MaxFloat64)}, []int64{1, 2, 3, 4, 5, 6}},
		{"TextInTitle", "lakers", domain.Filters{}, []int64{3}},
		{"TextInVenue", "GARDEN", domain.Filters{}, []int64{1, 5}},
		{"TextInLocation", "new york", domain.Filters{}, []int64{1, 2}},
		{"TextIsTrimmed", "  show ", domain.Filters{}, []int64{4, 5, 6}},
		{"CategoryIgnoresCase", "", domain.Filters{Category: "CONCERT"}, []int64{1, 4}},
		{"CategoryAllIgnoresCase", "", domain.Filters{Category: "All"}, []int64{1, 2, 3, 4, 5, 6}},
		{"PriceRangeInclusive", "", domain.Filters{MinPrice: price(40), MaxPrice: price(80)}, []int64{4, 5, 6}},
		{"MinPriceOnly", "", domain.Filters{MinPrice: price(120)}, []int64{1, 3}},
		{"MaxPriceOnly", "", domain.Filters{MaxPrice: price(25)}, []int64{2}},
		{"LocationExact", "", domain.Filters{Location: "city"}, []int64{4, 5, 6}},
		{"LocationIsNotSubstring", "", domain.Filters{Location: "York"}, []int64{}},
		{"Composed", "show", domain.Filters{Category: "concert", Location: "City", MaxPrice: price(60)}, []int64{4}},
		{"NothingMatches", "opera", domain.Filters{}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newService().Search(context.Background(), tt.text, tt.filters)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_StorageFailureIsReturned(t *testing.T) {
	boom := &domain.StorageError{Op: "load", Err: errors.New("down")}
	svc := service.NewQueryService(&MockListingReader{
		ListFunc: func(ctx context.Context) ([]domain.EventListing, error) { return nil, boom },
	})

	_, err := svc.Search(context.Background(), "x", domain.Filters{})
	assert.ErrorIs(t, err, boom)

	_, err = svc.BySeller(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, boom)
}

func TestBySeller_IsSubsetOfList(t *testing.T) {
	ctx := context.Background()
	s := store.New(repository.NewMemoryRepository())
	_, err := s.Seed(ctx, catalog())
	require.NoError(t, err)

	all, err := s.List(ctx)
	require.NoError(t, err)
	got, err := service.NewQueryService(s).BySeller(ctx, "a@x.com")
	require.NoError(t, err)

	var want []int64
	for _, l := range all {
		if l.SellerEmail == "a@x.com" || l.SellerEmail == "A@X.COM" {
			want = append(want, l.ID)
		}
	}
	assert.Equal(t, want, ids(got))
}
