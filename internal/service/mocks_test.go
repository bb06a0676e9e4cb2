package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodreview/internal/models"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindOrCreateByMobile(ctx context.Context, mobile string) (models.User, error) {
	args := m.Called(ctx, mobile)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

type mockIssuer struct{ mock.Mock }

func (m *mockIssuer) Issue(userID primitive.ObjectID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type mockFoodRepo struct{ mock.Mock }

func (m *mockFoodRepo) Insert(ctx context.Context, food *models.Food) error {
	args := m.Called(ctx, food)
	if args.Error(0) == nil && food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockFoodRepo) FindByID(ctx context.Context, id primitive.ObjectID) (models.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *mockFoodRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Food, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *mockFoodRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFoodRepo) Page(ctx context.Context, page, limit int64) ([]models.Food, int64, error) {
	args := m.Called(ctx, page, limit)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Get(1).(int64), args.Error(2)
}

func (m *mockFoodRepo) Nearby(ctx context.Context, lat, lng float64) ([]models.Food, error) {
	args := m.Called(ctx, lat, lng)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Error(1)
}

func (m *mockFoodRepo) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Food, error) {
	args := m.Called(ctx, userID)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Error(1)
}

func (m *mockFoodRepo) Search(ctx context.Context, query string) ([]models.Food, error) {
	args := m.Called(ctx, query)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Insert(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil && review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockReviewRepo) ListWithAuthors(ctx context.Context) ([]models.PopulatedReview, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]models.PopulatedReview)
	return reviews, args.Error(1)
}

func (m *mockReviewRepo) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepo) ByFood(ctx context.Context, foodID primitive.ObjectID) ([]models.Review, error) {
	args := m.Called(ctx, foodID)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Review, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (models.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Review), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event models.ReviewEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockQR struct{ mock.Mock }

func (m *mockQR) Generate(foodID primitive.ObjectID) ([]byte, error) {
	args := m.Called(foodID)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}
