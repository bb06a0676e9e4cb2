package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func sentIndexes(mt *mtest.T) (string, []bson.Raw) {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "createIndexes", evt.CommandName)

	values, err := evt.Command.Lookup("indexes").Array().Values()
	require.NoError(mt, err)
	docs := make([]bson.Raw, 0, len(values))
	for _, v := range values {
		docs = append(docs, v.Document())
	}
	return evt.Command.Lookup("createIndexes").StringValue(), docs
}

func TestEnsureUserIndexesCreatesUniqueMobileIndex(t *testing.T) {
	mt := newMockT(t)

	mt.Run("unique mobile_no", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureUserIndexes(context.Background(), mt.DB, zap.NewNop()))

		coll, indexes := sentIndexes(mt)
		assert.Equal(mt, UsersCollection, coll)
		require.Len(mt, indexes, 1)
		assert.Equal(mt, "mobile_no_unique", indexes[0].Lookup("name").StringValue())
		assert.True(mt, indexes[0].Lookup("unique").Boolean())
		assert.Equal(mt, int64(1), indexes[0].Lookup("key", "mobile_no").AsInt64())
	})

	mt.Run("surfaces server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Name:    "IndexOptionsConflict",
			Message: "index mobile_no_unique already exists with different options",
		}))

		err := EnsureUserIndexes(context.Background(), mt.DB, zap.NewNop())
		assert.ErrorContains(mt, err, "IndexOptionsConflict")
	})
}

func TestEnsureIndexesCoversEveryCollection(t *testing.T) {
	mt := newMockT(t)

	mt.Run("all collections", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB, zap.NewNop()))

		users, _ := sentIndexes(mt)
		foods, foodIndexes := sentIndexes(mt)
		reviews, reviewIndexes := sentIndexes(mt)
		assert.Equal(mt, []string{UsersCollection, FoodsCollection, ReviewsCollection}, []string{users, foods, reviews})
		assert.Len(mt, foodIndexes, 1)
		assert.Len(mt, reviewIndexes, 2)
	})

	mt.Run("stops at first failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		require.Error(mt, EnsureIndexes(context.Background(), mt.DB, zap.NewNop()))
		sentIndexes(mt)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
