// Package store owns the listing collection: identifiers, defaults and every
// mutation go through a Store.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"ticketvault/internal/codec"
	"ticketvault/internal/domain"
	"ticketvault/internal/repository"
)

const DefaultTimeout = 5 * time.Second

type Store struct {
	repo    repository.ListingRepository
	codec   *codec.Codec
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time

	// mu serializes read-modify-write cycles within the process.
	mu sync.Mutex
}

type Option func(*Store)

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithTimeout bounds every repository call.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(repo repository.ListingRepository, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		codec:   codec.New(),
		log:     zap.NewNop(),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every listing in ascending id order.
func (s *Store) List(ctx context.Context) ([]domain.EventListing, error) {
	var listings []domain.EventListing
	err := s.read(ctx, func(ctx context.Context) error {
		var err error
		listings, err = s.load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByID(listings)
	return listings, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*domain.EventListing, error) {
	var found *domain.EventListing
	err := s.read(ctx, func(ctx context.Context) error {
		var err error
		found, err = s.get(ctx, id)
		return err
	})
	return found, err
}

func (s *Store) get(ctx context.Context, id int64) (*domain.EventListing, error) {
	if g, ok := s.repo.(repository.ListingGetter); ok {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		l, err := g.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if err != nil {
			return nil, s.storageError("get", err)
		}
		return l, nil
	}

	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(listings, id); i >= 0 {
		return &listings[i], nil
	}
	return nil, domain.ErrNotFound
}

// Create validates fields, assigns the next id and persists the new listing.
func (s *Store) Create(ctx context.Context, fields codec.Fields) (*domain.EventListing, error) {
	l, err := s.codec.Validate(fields.Without("id"))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	l.ID = nextID(listings)
	l.CreatedAt = s.stamp()

	if err := s.save(ctx, append(listings, *l)); err != nil {
		return nil, err
	}
	s.log.Debug("listing created", zap.Int64("id", l.ID), zap.String("sellerEmail", l.SellerEmail))
	return l, nil
}

// Update merges patch onto the stored listing and validates the result.
// id, createdAt, sellerEmail and isUserListing cannot be patched. A non-empty
// owner must match the stored sellerEmail.
func (s *Store) Update(ctx context.Context, id int64, patch codec.Fields, owner string) (*domain.EventListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(listings, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	current := listings[i]
	if !ownedBy(current, owner) {
		return nil, domain.ErrForbidden
	}

	base, err := codec.FieldsOf(current)
	if err != nil {
		return nil, err
	}
	updated, err := s.codec.Validate(base.Merge(patch.Without("id", "createdAt", "sellerEmail", "isUserListing")))
	if err != nil {
		return nil, err
	}
	if updated.SoldCount < current.SoldCount {
		return nil, domain.ErrValidation("soldCount", "cannot be decreased")
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	listings[i] = *updated

	if err := s.save(ctx, listings); err != nil {
		return nil, err
	}
	s.log.Debug("listing updated", zap.Int64("id", id))
	return updated, nil
}

// Delete removes a listing. A non-empty owner must match the stored
// sellerEmail.
func (s *Store) Delete(ctx context.Context, id int64, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(listings, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	if !ownedBy(listings[i], owner) {
		return domain.ErrForbidden
	}

	if err := s.save(ctx, append(listings[:i], listings[i+1:]...)); err != nil {
		return err
	}
	s.log.Debug("listing deleted", zap.Int64("id", id))
	return nil
}

// Seed inserts listings when the collection is empty and reports how many
// were written. Ids are kept when positive and unique, otherwise reassigned.
func (s *Store) Seed(ctx context.Context, seed []domain.EventListing) (int, error) {
	if len(seed) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if len(listings) > 0 {
		return 0, nil
	}

	now := s.stamp()
	used := make(map[int64]bool, len(seed))
	out := make([]domain.EventListing, 0, len(seed))
	for _, l := range seed {
		l = l.Clone()
		if l.ID <= 0 || used[l.ID] {
			l.ID = nextID(out)
		}
		used[l.ID] = true
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		} else {
			l.CreatedAt = l.CreatedAt.UTC().Truncate(time.Millisecond)
		}
		if l.Seller == "" {
			l.Seller = codec.DefaultSeller
		}
		out = append(out, l)
	}

	if err := s.save(ctx, out); err != nil {
		return 0, err
	}
	s.log.Info("seeded listings", zap.Int("count", len(out)))
	return len(out), nil
}

// read runs fn and retries it once on a storage failure, unless the caller
// has given up.
func (s *Store) read(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil || !domain.IsStorageError(err) || ctx.Err() != nil {
		return err
	}
	s.log.Warn("retrying read after storage failure", zap.Error(err))
	return fn(ctx)
}

func (s *Store) load(ctx context.Context) ([]domain.EventListing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	listings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, s.storageError("load", err)
	}
	if listings == nil {
		listings = []domain.EventListing{}
	}
	return listings, nil
}

func (s *Store) save(ctx context.Context, listings []domain.EventListing) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Save(ctx, listings); err != nil {
		return s.storageError("save", err)
	}
	return nil
}

// stamp is the current time at millisecond precision, the coarsest any
// backend keeps, so a stored listing reads back unchanged.
func (s *Store) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Store) storageError(op string, err error) error {
	s.log.Error("storage failure", zap.String("op", op), zap.Error(err))
	return &domain.StorageError{Op: op, Err: err}
}

func ownedBy(l domain.EventListing, owner string) bool {
	return owner == "" || strings.EqualFold(l.SellerEmail, owner)
}

func nextID(listings []domain.EventListing) int64 {
	var top int64
	for _, l := range listings {
		if l.ID > top {
			top = l.ID
		}
	}
	return top + 1
}

func indexOf(listings []domain.EventListing, id int64) int {
	for i, l := range listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func sortByID(listings []domain.EventListing) {
	sort.Slice(listings, func(i, j int) bool { return listings[i].ID < listings[j].ID })
}
