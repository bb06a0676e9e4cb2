package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates every index the service relies on. The unique
// mobile_no index is what makes concurrent first logins safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	if err := EnsureUserIndexes(ctx, db, log); err != nil {
		return err
	}
	if err := EnsureFoodIndexes(ctx, db, log); err != nil {
		return err
	}
	return EnsureReviewIndexes(ctx, db, log)
}

func EnsureUserIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	mobileIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "mobile_no", Value: 1}},
		Options: options.Index().
			SetName("mobile_no_unique").
			SetUnique(true),
	}
	return createIndexes(ctx, db.Collection(UsersCollection), log, mobileIndex)
}

func EnsureFoodIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("user_id_index"),
	}
	return createIndexes(ctx, db.Collection(FoodsCollection), log, userIDIndex)
}

func EnsureReviewIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	userIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("user_id_index"),
	}
	foodIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "food_id", Value: 1}},
		Options: options.Index().SetName("food_id_index"),
	}
	return createIndexes(ctx, db.Collection(ReviewsCollection), log, userIDIndex, foodIDIndex)
}

func createIndexes(ctx context.Context, coll *mongo.Collection, log *zap.Logger, models ...mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	log.Info("creating indexes", zap.String("collection", coll.Name()), zap.Int("count", len(models)))
	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		log.Error("index creation failed", zap.String("collection", coll.Name()), zap.Error(err))
		return err
	}
	log.Info("indexes ready", zap.String("collection", coll.Name()), zap.Strings("names", names))
	return nil
}
