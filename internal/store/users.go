package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodreview/internal/database"
	"foodreview/internal/models"
)

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(database.UsersCollection)}
}

// FindOrCreateByMobile returns the user owning mobile, inserting a default
// user first when none exists. The upsert is atomic; a duplicate key error
// means a concurrent login won the insert, so the winner is read back.
func (s *UserStore) FindOrCreateByMobile(ctx context.Context, mobile string) (models.User, error) {
	now := time.Now().UTC()
	filter := bson.M{"mobile_no": mobile}
	update := bson.M{"$setOnInsert": bson.M{
		"name":      models.DefaultUserName,
		"mobile_no": mobile,
		"createdAt": now,
		"updatedAt": now,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err == nil {
		return user, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return models.User{}, err
	}

	if err := s.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](ctx, cursor)
}
