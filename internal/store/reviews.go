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

type ReviewStore struct {
	coll *mongo.Collection
}

func NewReviewStore(db *mongo.Database) *ReviewStore {
	return &ReviewStore{coll: db.Collection(database.ReviewsCollection)}
}

func (s *ReviewStore) Insert(ctx context.Context, review *models.Review) error {
	now := time.Now().UTC()
	review.ID = primitive.NilObjectID
	review.CreatedAt = now
	review.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListWithAuthors returns every review with user_id replaced by {_id, name}
// of the referenced user.
func (s *ReviewStore) ListWithAuthors(ctx context.Context) ([]models.PopulatedReview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         database.UsersCollection,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"user_id": bson.M{"$arrayElemAt": bson.A{"$author", 0}},
		}}},
		{{Key: "$project", Value: bson.M{
			"author":            0,
			"user_id.mobile_no": 0,
			"user_id.createdAt": 0,
			"user_id.updatedAt": 0,
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.PopulatedReview](ctx, cursor)
}

func (s *ReviewStore) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *ReviewStore) ByFood(ctx context.Context, foodID primitive.ObjectID) ([]models.Review, error) {
	return s.find(ctx, bson.M{"food_id": foodID})
}

func (s *ReviewStore) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Review](ctx, cursor)
}

func (s *ReviewStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Review, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	var review models.Review
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&review)
	if err != nil {
		return models.Review{}, notFound(err)
	}
	return review, nil
}

// Delete removes the review and returns it as it was before deletion.
func (s *ReviewStore) Delete(ctx context.Context, id primitive.ObjectID) (models.Review, error) {
	var review models.Review
	if err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&review); err != nil {
		return models.Review{}, notFound(err)
	}
	return review, nil
}

// AverageRating aggregates the ratings of one food. count is zero when the
// food has no reviews, in which case avg is meaningless.
func (s *ReviewStore) AverageRating(ctx context.Context, foodID primitive.ObjectID) (avg float64, count int64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"food_id": foodID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$food_id",
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	rows, err := decodeAll[struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}](ctx, cursor)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Avg, rows[0].Count, nil
}
