package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodreview/internal/models"
	"foodreview/internal/service"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Login(ctx context.Context, mobileNumber string) (string, error) {
	args := m.Called(ctx, mobileNumber)
	return args.String(0), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

type mockFoodService struct{ mock.Mock }

func (m *mockFoodService) CreateFood(ctx context.Context, req service.CreateFoodRequest, userID primitive.ObjectID) (models.Food, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *mockFoodService) EditFood(ctx context.Context, id string, update models.FoodUpdate) (models.Food, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *mockFoodService) DeleteFood(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFoodService) GetAllFoods(ctx context.Context, page, limit int64) (service.FoodPage, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(service.FoodPage), args.Error(1)
}

func (m *mockFoodService) GetFoodByID(ctx context.Context, id string) (models.Food, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Food), args.Error(1)
}

func (m *mockFoodService) GetNearbyFoods(ctx context.Context, latitude, longitude string) ([]models.Food, error) {
	args := m.Called(ctx, latitude, longitude)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Error(1)
}

func (m *mockFoodService) GetFoodByUser(ctx context.Context, userID string) ([]models.Food, error) {
	args := m.Called(ctx, userID)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Error(1)
}

func (m *mockFoodService) SearchFood(ctx context.Context, query string) ([]models.Food, error) {
	args := m.Called(ctx, query)
	foods, _ := args.Get(0).([]models.Food)
	return foods, args.Error(1)
}

func (m *mockFoodService) FoodQRCode(ctx context.Context, id string) ([]byte, error) {
	args := m.Called(ctx, id)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

type mockReviewService struct{ mock.Mock }

func (m *mockReviewService) GetAllReviews(ctx context.Context) ([]models.PopulatedReview, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]models.PopulatedReview)
	return reviews, args.Error(1)
}

func (m *mockReviewService) GetReviewsByUserID(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewService) GetReviewsByFoodID(ctx context.Context, foodID string) ([]models.Review, error) {
	args := m.Called(ctx, foodID)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewService) AddReview(ctx context.Context, req service.AddReviewRequest, caller primitive.ObjectID) (models.Review, error) {
	args := m.Called(ctx, req, caller)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, id string, req service.UpdateReviewRequest) (models.Review, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, id string) (models.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Review), args.Error(1)
}
