package shop

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed shop repository.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, s Shop) error {
	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (Shop, error) {
	var s Shop
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return Shop{}, ErrNotFound
		}
		return Shop{}, err
	}
	return s, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Shop, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	shops := []Shop{}
	for cur.Next(ctx) {
		var s Shop
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, cur.Err()
}

func (r *MongoRepository) Update(ctx context.Context, id string, fields UpdateFields) (Shop, error) {
	set := bson.M{}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Address != nil {
		set["address"] = *fields.Address
	}

	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var s Shop
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Shop{}, ErrNotFound
		}
		return Shop{}, err
	}
	return s, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
