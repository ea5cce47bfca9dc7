package user

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

// NewMongoRepository builds a Mongo-backed user repository and ensures the
// unique phone index exists.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("phone_unique_idx"),
	}
	_, _ = coll.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, u User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrPhoneExists
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (User, error) {
	var u User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *MongoRepository) FindByPhone(ctx context.Context, phone string) (User, error) {
	var u User
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []User{}
	for cur.Next(ctx) {
		var u User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, cur.Err()
}

func (r *MongoRepository) Update(ctx context.Context, id string, fields UpdateFields) (User, error) {
	set := bson.M{}
	if fields.Phone != nil {
		set["phone"] = *fields.Phone
	}
	if fields.PasswordHash != nil {
		set["password"] = fields.PasswordHash
	}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.Gender != nil {
		set["gender"] = *fields.Gender
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}

	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return User{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrPhoneExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) ElevateToHigh(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": bson.M{"$ne": StatusDiagnosed},
	}
	_, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": StatusHigh}})
	return err
}

func (r *MongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
