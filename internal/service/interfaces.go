package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodreview/internal/models"
)

type UserRepository interface {
	FindOrCreateByMobile(ctx context.Context, mobile string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type FoodRepository interface {
	Insert(ctx context.Context, food *models.Food) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Food, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Food, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Page(ctx context.Context, page, limit int64) ([]models.Food, int64, error)
	Nearby(ctx context.Context, lat, lng float64) ([]models.Food, error)
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Food, error)
	Search(ctx context.Context, query string) ([]models.Food, error)
}

type ReviewRepository interface {
	Insert(ctx context.Context, review *models.Review) error
	ListWithAuthors(ctx context.Context) ([]models.PopulatedReview, error)
	ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
	ByFood(ctx context.Context, foodID primitive.ObjectID) ([]models.Review, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.Review, error)
}

type TokenIssuer interface {
	Issue(userID primitive.ObjectID) (string, error)
}

type ReviewPublisher interface {
	Publish(ctx context.Context, event models.ReviewEvent) error
}

type QRGenerator interface {
	Generate(foodID primitive.ObjectID) ([]byte, error)
}

type UserServiceInterface interface {
	Login(ctx context.Context, mobileNumber string) (string, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

type FoodServiceInterface interface {
	CreateFood(ctx context.Context, req CreateFoodRequest, userID primitive.ObjectID) (models.Food, error)
	EditFood(ctx context.Context, id string, update models.FoodUpdate) (models.Food, error)
	DeleteFood(ctx context.Context, id string) error
	GetAllFoods(ctx context.Context, page, limit int64) (FoodPage, error)
	GetFoodByID(ctx context.Context, id string) (models.Food, error)
	GetNearbyFoods(ctx context.Context, latitude, longitude string) ([]models.Food, error)
	GetFoodByUser(ctx context.Context, userID string) ([]models.Food, error)
	SearchFood(ctx context.Context, query string) ([]models.Food, error)
	FoodQRCode(ctx context.Context, id string) ([]byte, error)
}

type ReviewServiceInterface interface {
	GetAllReviews(ctx context.Context) ([]models.PopulatedReview, error)
	GetReviewsByUserID(ctx context.Context, userID string) ([]models.Review, error)
	GetReviewsByFoodID(ctx context.Context, foodID string) ([]models.Review, error)
	AddReview(ctx context.Context, req AddReviewRequest, caller primitive.ObjectID) (models.Review, error)
	UpdateReview(ctx context.Context, id string, req UpdateReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, id string) (models.Review, error)
}
