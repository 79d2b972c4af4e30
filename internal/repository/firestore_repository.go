package repository

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ticketvault/internal/domain"
)

type firestoreRepo struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreRepository keeps one document per listing, keyed by the decimal
// listing id.
func NewFirestoreRepository(client *firestore.Client, collection string) ListingRepository {
	if collection == "" {
		collection = CollectionEvents
	}
	return &firestoreRepo{client: client, collection: collection}
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (r *firestoreRepo) Load(ctx context.Context) ([]domain.EventListing, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	listings := []domain.EventListing{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var l domain.EventListing
		if err := doc.DataTo(&l); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", r.collection, doc.Ref.ID, err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *firestoreRepo) Get(ctx context.Context, id int64) (*domain.EventListing, error) {
	doc, err := r.client.Collection(r.collection).Doc(docID(id)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var l domain.EventListing
	if err := doc.DataTo(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Save rewrites the collection inside one transaction: documents whose id is
// no longer present are deleted, the rest are overwritten. Firestore caps a
// transaction at 500 writes.
func (r *firestoreRepo) Save(ctx context.Context, listings []domain.EventListing) error {
	col := r.client.Collection(r.collection)
	keep := make(map[string]bool, len(listings))
	for _, l := range listings {
		keep[docID(l.ID)] = true
	}

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(col).GetAll()
		if err != nil {
			return err
		}
		for _, doc := range existing {
			if keep[doc.Ref.ID] {
				continue
			}
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}
		for _, l := range listings {
			if err := tx.Set(col.Doc(docID(l.ID)), l); err != nil {
				return err
			}
		}
		return nil
	})
}
