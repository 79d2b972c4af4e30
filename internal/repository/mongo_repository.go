package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ticketvault/internal/domain"
)

type mongoRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoRepository keeps one document per listing with a unique index on
// "id". Save runs in a transaction, which needs a replica set or mongos.
func NewMongoRepository(client *mongo.Client, database, collection string) ListingRepository {
	if database == "" {
		database = DatabaseName
	}
	if collection == "" {
		collection = CollectionEvents
	}
	return &mongoRepo{client: client, coll: client.Database(database).Collection(collection)}
}

// EnsureIndexes creates the unique id index. It is idempotent.
func EnsureIndexes(ctx context.Context, repo ListingRepository) error {
	r, ok := repo.(*mongoRepo)
	if !ok {
		return nil
	}
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *mongoRepo) Load(ctx context.Context) ([]domain.EventListing, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	listings := []domain.EventListing{}
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *mongoRepo) Get(ctx context.Context, id int64) (*domain.EventListing, error) {
	var l domain.EventListing
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *mongoRepo) Save(ctx context.Context, listings []domain.EventListing) error {
	sess, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		ids := make(bson.A, 0, len(listings))
		models := make([]mongo.WriteModel, 0, len(listings))
		for _, l := range listings {
			ids = append(ids, l.ID)
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "id", Value: l.ID}}).
				SetReplacement(l).
				SetUpsert(true))
		}

		if _, err := r.coll.DeleteMany(sc, bson.D{{Key: "id", Value: bson.D{{Key: "$nin", Value: ids}}}}); err != nil {
			return nil, err
		}
		if len(models) == 0 {
			return nil, nil
		}
		_, err := r.coll.BulkWrite(sc, models)
		return nil, err
	})
	return err
}
