package checkin

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed check-in repository and ensures
// the indexes the contact query relies on.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "checked_in_at", Value: -1}},
			Options: options.Index().SetName("user_at_idx"),
		},
		{
			Keys:    bson.D{{Key: "shop", Value: 1}, {Key: "checked_in_at", Value: -1}},
			Options: options.Index().SetName("shop_at_idx"),
		},
	}
	_, _ = coll.Indexes().CreateMany(context.Background(), indexes)
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, c CheckIn) error {
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]CheckIn, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *MongoRepository) ListByShop(ctx context.Context, shopID string) ([]CheckIn, error) {
	return r.find(ctx, bson.M{"shop": shopID})
}

func (r *MongoRepository) FindByUserSince(ctx context.Context, userID string, since time.Time) ([]CheckIn, error) {
	return r.find(ctx, bson.M{
		"user":          userID,
		"checked_in_at": bson.M{"$gte": since},
	})
}

func (r *MongoRepository) FindContacts(ctx context.Context, excludeUserID string, windows []Window) ([]CheckIn, error) {
	if len(windows) == 0 {
		return nil, nil
	}

	or := make([]bson.M, 0, len(windows))
	for _, w := range windows {
		or = append(or, bson.M{
			"shop":          w.ShopID,
			"checked_in_at": bson.M{"$gte": w.From, "$lt": w.To},
		})
	}

	return r.find(ctx, bson.M{
		"user": bson.M{"$ne": excludeUserID},
		"$or":  or,
	})
}

func (r *MongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]CheckIn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "checked_in_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []CheckIn{}
	for cur.Next(ctx) {
		var c CheckIn
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}
