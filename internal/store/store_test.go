package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"foodreview/internal/geo"
	"foodreview/internal/models"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestUserStoreFindOrCreateByMobile(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("returns upserted user", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: models.DefaultUserName},
			{Key: "mobile_no", Value: "9876543210"},
		}}))

		user, err := NewUserStore(mt.DB).FindOrCreateByMobile(ctx, "9876543210")
		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, models.DefaultUserName, user.Name)
		assert.Equal(mt, "9876543210", user.MobileNumber)
	})

	mt.Run("reads winner after duplicate key race", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11000,
				Name:    "DuplicateKey",
				Message: "E11000 duplicate key error collection: foodreview.users index: mobile_no_unique",
			}),
			mtest.CreateCursorResponse(0, "foodreview.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Asha"},
				{Key: "mobile_no", Value: "9876543210"},
			}),
		)

		user, err := NewUserStore(mt.DB).FindOrCreateByMobile(ctx, "9876543210")
		require.NoError(mt, err)
		assert.Equal(mt, id, user.ID)
		assert.Equal(mt, "Asha", user.Name)
	})

	mt.Run("propagates other errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "boom",
		}))

		_, err := NewUserStore(mt.DB).FindOrCreateByMobile(ctx, "9876543210")
		assert.Error(mt, err)
		assert.False(mt, errors.Is(err, ErrNotFound))
	})
}

func TestUserStoreFindByIDNotFound(t *testing.T) {
	mt := newMockT(t)

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodreview.users", mtest.FirstBatch))

		_, err := NewUserStore(mt.DB).FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestUserStoreListEmptyIsNotNil(t *testing.T) {
	mt := newMockT(t)

	mt.Run("empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodreview.users", mtest.FirstBatch))

		users, err := NewUserStore(mt.DB).List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, users)
		assert.Len(mt, users, 0)
	})
}

func TestFoodStoreDelete(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("deletes then reports not found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		foods := NewFoodStore(mt.DB)
		require.NoError(mt, foods.Delete(ctx, id))
		assert.ErrorIs(mt, foods.Delete(ctx, id), ErrNotFound)
	})
}

func TestFoodStoreInsertAssignsID(t *testing.T) {
	mt := newMockT(t)

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		food := &models.Food{Name: "Vada Pav", Address: "Dadar", Latitude: 19.0178, Longitude: 72.8478}
		require.NoError(mt, NewFoodStore(mt.DB).Insert(context.Background(), food))
		assert.False(mt, food.ID.IsZero())
		assert.False(mt, food.CreatedAt.IsZero())
		assert.Equal(mt, food.CreatedAt, food.UpdatedAt)
	})
}

func TestFoodStorePage(t *testing.T) {
	mt := newMockT(t)

	mt.Run("page with total", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "foodreview.foods", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "a"}, {Key: "latitude", Value: 1.0}, {Key: "longitude", Value: 2.0}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "b"}, {Key: "latitude", Value: "3.5"}, {Key: "longitude", Value: int32(4)}},
			),
			mtest.CreateCursorResponse(0, "foodreview.foods", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(25)}}),
		)

		foods, total, err := NewFoodStore(mt.DB).Page(context.Background(), 2, 10)
		require.NoError(mt, err)
		assert.Len(mt, foods, 2)
		assert.Equal(mt, int64(25), total)
		assert.Equal(mt, models.Coordinate(3.5), foods[1].Latitude)
	})
}

func TestFoodStoreUpdateNotFound(t *testing.T) {
	mt := newMockT(t)

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := NewFoodStore(mt.DB).Update(context.Background(), primitive.NewObjectID(), map[string]interface{}{"name": "x"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestReviewStoreDeleteReturnsDocument(t *testing.T) {
	mt := newMockT(t)

	mt.Run("delete", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "rating", Value: 4.0},
			{Key: "review", Value: "crisp"},
		}}))

		review, err := NewReviewStore(mt.DB).Delete(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, review.ID)
		assert.Equal(mt, 4.0, review.Rating)
	})
}

func TestReviewStoreListWithAuthors(t *testing.T) {
	mt := newMockT(t)

	mt.Run("expands author", func(mt *mtest.T) {
		userID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodreview.reviews", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "rating", Value: 5.0},
				{Key: "user_id", Value: bson.D{{Key: "_id", Value: userID}, {Key: "name", Value: "Asha"}}},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "rating", Value: 1.0},
			},
		))

		reviews, err := NewReviewStore(mt.DB).ListWithAuthors(context.Background())
		require.NoError(mt, err)
		require.Len(mt, reviews, 2)
		require.NotNil(mt, reviews[0].Author)
		assert.Equal(mt, "Asha", reviews[0].Author.Name)
		assert.Equal(mt, userID, reviews[0].Author.ID)
		assert.Nil(mt, reviews[1].Author)
	})
}

func TestReviewStoreAverageRating(t *testing.T) {
	mt := newMockT(t)
	foodID := primitive.NewObjectID()

	mt.Run("with reviews", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodreview.reviews", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: foodID}, {Key: "avg", Value: 3.5}, {Key: "count", Value: int32(4)}},
		))

		avg, count, err := NewReviewStore(mt.DB).AverageRating(context.Background(), foodID)
		require.NoError(mt, err)
		assert.Equal(mt, 3.5, avg)
		assert.Equal(mt, int64(4), count)
	})

	mt.Run("without reviews", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodreview.reviews", mtest.FirstBatch))

		_, count, err := NewReviewStore(mt.DB).AverageRating(context.Background(), foodID)
		require.NoError(mt, err)
		assert.Zero(mt, count)
	})
}

func TestNearbyFilterKeepsPlanarFormula(t *testing.T) {
	filter := nearbyFilter(12.5, 77.25)

	expr := filter["$expr"].(bson.M)
	lte := expr["$lte"].(bson.A)
	require.Len(t, lte, 2)
	assert.Equal(t, geo.NearbyRadius, lte[1])

	terms := lte[0].(bson.M)["$sqrt"].(bson.M)["$add"].(bson.A)
	require.Len(t, terms, 2)

	lat := terms[0].(bson.M)["$pow"].(bson.A)
	assert.Equal(t, 2, lat[1])
	sub := lat[0].(bson.M)["$subtract"].(bson.A)
	assert.Equal(t, bson.M{"$toDouble": "$latitude"}, sub[0])
	assert.Equal(t, 12.5, sub[1])
}

func TestSearchFilterQuotesInput(t *testing.T) {
	filter := searchFilter("pizza (large)")
	clauses := filter["$or"].(bson.A)
	require.Len(t, clauses, 3)

	for i, field := range []string{"name", "category", "shop_name"} {
		re := clauses[i].(bson.M)[field].(primitive.Regex)
		assert.Equal(t, `pizza \(large\)`, re.Pattern)
		assert.Equal(t, "i", re.Options)
	}
}
