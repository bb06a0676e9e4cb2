package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"foodreview/internal/models"
)

type AddReviewRequest struct {
	Rating *float64 `json:"rating"`
	Review string   `json:"review"`
	FoodID string   `json:"food_id"`
	UserID string   `json:"user_id"`
}

// UpdateReviewRequest distinguishes an absent field (nil) from a zero value.
type UpdateReviewRequest struct {
	Rating *float64 `json:"rating"`
	Review *string  `json:"review"`
}

type ReviewService struct {
	reviews   ReviewRepository
	publisher ReviewPublisher
	log       *zap.Logger
}

func NewReviewService(reviews ReviewRepository, publisher ReviewPublisher, log *zap.Logger) *ReviewService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewService{reviews: reviews, publisher: publisher, log: log}
}

func (s *ReviewService) GetAllReviews(ctx context.Context) ([]models.PopulatedReview, error) {
	reviews, err := s.reviews.ListWithAuthors(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return reviews, nil
}

func (s *ReviewService) GetReviewsByUserID(ctx context.Context, userID string) ([]models.Review, error) {
	id, err := parseID(userID, "User ID is required.", "Invalid user ID.")
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ByUser(ctx, id)
	if err != nil {
		return nil, internal(err)
	}
	if len(reviews) == 0 {
		return nil, notFoundError("No reviews found for this user")
	}
	return reviews, nil
}

func (s *ReviewService) GetReviewsByFoodID(ctx context.Context, foodID string) ([]models.Review, error) {
	id, err := parseID(foodID, "Food ID is required.", "Invalid food ID.")
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ByFood(ctx, id)
	if err != nil {
		return nil, internal(err)
	}
	if len(reviews) == 0 {
		return nil, notFoundError("No reviews found for this food")
	}
	return reviews, nil
}

// AddReview stores a review. An omitted user_id defaults to caller.
func (s *ReviewService) AddReview(ctx context.Context, req AddReviewRequest, caller primitive.ObjectID) (models.Review, error) {
	if req.Rating == nil {
		return models.Review{}, badRequest("Rating is required.")
	}

	foodID, err := parseID(req.FoodID, "Food ID is required.", "Invalid food ID.")
	if err != nil {
		return models.Review{}, err
	}

	userID := caller
	if strings.TrimSpace(req.UserID) != "" || caller.IsZero() {
		if userID, err = parseID(req.UserID, "User ID is required.", "Invalid user ID."); err != nil {
			return models.Review{}, err
		}
	}

	review := models.Review{
		Rating: *req.Rating,
		Review: strings.TrimSpace(req.Review),
		UserID: userID,
		FoodID: foodID,
	}
	if err := models.Validate(review); err != nil {
		return models.Review{}, reviewInvalid(err, "Rating must be between 0 and 5")
	}
	if err := s.reviews.Insert(ctx, &review); err != nil {
		return models.Review{}, internal(err)
	}

	publish(ctx, s.log, s.publisher, models.NewReviewEvent(models.ReviewCreated, review))
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id string, req UpdateReviewRequest) (models.Review, error) {
	reviewID, err := parseID(id, "Review ID is required.", "Invalid review ID.")
	if err != nil {
		return models.Review{}, err
	}

	if req.Rating == nil && req.Review == nil {
		return models.Review{}, badRequest("At least one field (rating or review) must be provided to update.")
	}

	fields := map[string]interface{}{}
	if req.Rating != nil {
		if err := models.ValidateFields(models.Review{Rating: *req.Rating}, "Rating"); err != nil {
			return models.Review{}, reviewInvalid(err, "Rating must be between 0 and 5.")
		}
		fields["rating"] = *req.Rating
	}
	if req.Review != nil {
		fields["review"] = strings.TrimSpace(*req.Review)
	}

	review, err := s.reviews.Update(ctx, reviewID, fields)
	if err != nil {
		return models.Review{}, fromStore(err, "Review not found.")
	}

	publish(ctx, s.log, s.publisher, models.NewReviewEvent(models.ReviewUpdated, review))
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id string) (models.Review, error) {
	reviewID, err := parseID(id, "Review ID is required.", "Invalid review ID.")
	if err != nil {
		return models.Review{}, err
	}

	review, err := s.reviews.Delete(ctx, reviewID)
	if err != nil {
		return models.Review{}, fromStore(err, "Review not found.")
	}

	publish(ctx, s.log, s.publisher, models.NewReviewEvent(models.ReviewDeleted, review))
	return review, nil
}

// publish logs delivery failures instead of returning them.
func publish(ctx context.Context, log *zap.Logger, publisher ReviewPublisher, event models.ReviewEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn("review event not published",
			zap.String("type", event.Type),
			zap.String("review_id", event.ReviewID.Hex()),
			zap.Error(err),
		)
	}
}
