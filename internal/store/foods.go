package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"foodreview/internal/database"
	"foodreview/internal/geo"
	"foodreview/internal/models"
)

type FoodStore struct {
	coll *mongo.Collection
}

func NewFoodStore(db *mongo.Database) *FoodStore {
	return &FoodStore{coll: db.Collection(database.FoodsCollection)}
}

func (s *FoodStore) Insert(ctx context.Context, food *models.Food) error {
	now := time.Now().UTC()
	food.ID = primitive.NilObjectID
	food.CreatedAt = now
	food.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, food)
	if err != nil {
		return err
	}
	food.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *FoodStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Food, error) {
	var food models.Food
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		return models.Food{}, notFound(err)
	}
	return food, nil
}

// Update applies fields with $set and returns the document after the write.
func (s *FoodStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Food, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var food models.Food
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&food)
	if err != nil {
		return models.Food{}, notFound(err)
	}
	return food, nil
}

func (s *FoodStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Page returns one page of foods in natural order together with the total count.
func (s *FoodStore) Page(ctx context.Context, page, limit int64) ([]models.Food, int64, error) {
	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	foods, err := decodeAll[models.Food](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}

// Nearby evaluates the geo.NearbyRadius rule inside MongoDB.
func (s *FoodStore) Nearby(ctx context.Context, lat, lng float64) ([]models.Food, error) {
	cursor, err := s.coll.Find(ctx, nearbyFilter(lat, lng))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Food](ctx, cursor)
}

func nearbyFilter(lat, lng float64) bson.M {
	squaredDelta := func(field string, value float64) bson.M {
		return bson.M{"$pow": bson.A{
			bson.M{"$subtract": bson.A{bson.M{"$toDouble": field}, value}},
			2,
		}}
	}

	return bson.M{"$expr": bson.M{"$lte": bson.A{
		bson.M{"$sqrt": bson.M{"$add": bson.A{
			squaredDelta("$latitude", lat),
			squaredDelta("$longitude", lng),
		}}},
		geo.NearbyRadius,
	}}}
}

func (s *FoodStore) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Food, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Food](ctx, cursor)
}

// Search matches query as a literal, case-insensitive substring of name,
// category or shop_name.
func (s *FoodStore) Search(ctx context.Context, query string) ([]models.Food, error) {
	cursor, err := s.coll.Find(ctx, searchFilter(query))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Food](ctx, cursor)
}

func searchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"category": pattern},
		bson.M{"shop_name": pattern},
	}}
}

// SetRating overwrites the stored rating; nil removes it.
func (s *FoodStore) SetRating(ctx context.Context, id primitive.ObjectID, rating *float64) error {
	now := time.Now().UTC()
	update := bson.M{
		"$unset": bson.M{"rating": ""},
		"$set":   bson.M{"updatedAt": now},
	}
	if rating != nil {
		update = bson.M{"$set": bson.M{"rating": *rating, "updatedAt": now}}
	}

	res, err := s.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
