package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"foodreview/internal/geo"
	"foodreview/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateFoodRequest is the body of a food creation. Rating and Review seed the
// companion review written alongside the food.
type CreateFoodRequest struct {
	Name        string   `json:"name"`
	ShopName    string   `json:"shop_name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating"`
	Review      string   `json:"review"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
}

type FoodPage struct {
	Foods      []models.Food
	Pagination models.Pagination
}

type FoodService struct {
	foods     FoodRepository
	reviews   ReviewRepository
	publisher ReviewPublisher
	qr        QRGenerator
	log       *zap.Logger
}

func NewFoodService(foods FoodRepository, reviews ReviewRepository, publisher ReviewPublisher, qr QRGenerator, log *zap.Logger) *FoodService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FoodService{foods: foods, reviews: reviews, publisher: publisher, qr: qr, log: log}
}

// CreateFood stores a new food owned by userID and, when a rating was given,
// its companion review. The two writes are independent: a failed review leaves
// the food in place and is reported as a server error naming it.
func (s *FoodService) CreateFood(ctx context.Context, req CreateFoodRequest, userID primitive.ObjectID) (models.Food, error) {
	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	// Zero coordinates count as missing.
	if name == "" || address == "" || req.Latitude == 0 || req.Longitude == 0 {
		return models.Food{}, badRequest("Missing inputs")
	}
	// The companion review is checked up front so that a bad rating writes
	// nothing. Its food_id is only known after the insert.
	if req.Rating != nil {
		companion := models.Review{Rating: *req.Rating, UserID: userID}
		if err := models.ValidateFields(companion, "Rating", "UserID"); err != nil {
			return models.Food{}, reviewInvalid(err, "Rating must be between 0 and 5")
		}
	}

	food := models.Food{
		Name:        name,
		ShopName:    strings.TrimSpace(req.ShopName),
		Category:    strings.TrimSpace(req.Category),
		Description: req.Description,
		Address:     address,
		Rating:      req.Rating,
		Latitude:    models.Coordinate(req.Latitude),
		Longitude:   models.Coordinate(req.Longitude),
	}
	if !userID.IsZero() {
		owner := userID
		food.UserID = &owner
	}

	if err := s.foods.Insert(ctx, &food); err != nil {
		return models.Food{}, internal(err)
	}

	if req.Rating == nil {
		return food, nil
	}

	review := models.Review{
		Rating: *req.Rating,
		Review: strings.TrimSpace(req.Review),
		UserID: userID,
		FoodID: food.ID,
	}
	if err := s.reviews.Insert(ctx, &review); err != nil {
		s.log.Error("companion review failed",
			zap.String("food_id", food.ID.Hex()),
			zap.Error(err),
		)
		return food, &Error{
			Kind:    KindInternal,
			Message: fmt.Sprintf("Food item %s was created but its review could not be saved.", food.ID.Hex()),
			Err:     err,
		}
	}

	publish(ctx, s.log, s.publisher, models.NewReviewEvent(models.ReviewCreated, review))
	return food, nil
}

func (s *FoodService) EditFood(ctx context.Context, id string, update models.FoodUpdate) (models.Food, error) {
	foodID, err := parseID(id, "Food ID is required.", "Invalid food ID.")
	if err != nil {
		return models.Food{}, err
	}

	if err := models.Validate(update); err != nil {
		return models.Food{}, invalidFields(err)
	}

	fields := update.Fields()
	if len(fields) == 0 {
		return models.Food{}, badRequest("At least one field must be provided to update.")
	}

	food, err := s.foods.Update(ctx, foodID, fields)
	if err != nil {
		return models.Food{}, fromStore(err, "Food not found.")
	}
	return food, nil
}

func (s *FoodService) DeleteFood(ctx context.Context, id string) error {
	foodID, err := parseID(id, "Food ID is required.", "Invalid food ID.")
	if err != nil {
		return err
	}

	if err := s.foods.Delete(ctx, foodID); err != nil {
		return fromStore(err, "Food not found.")
	}
	return nil
}

func (s *FoodService) GetAllFoods(ctx context.Context, page, limit int64) (FoodPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// The skip (page-1)*limit must stay within int64.
	if maxPage := math.MaxInt64 / limit; page > maxPage {
		page = maxPage
	}

	foods, total, err := s.foods.Page(ctx, page, limit)
	if err != nil {
		return FoodPage{}, internal(err)
	}

	return FoodPage{
		Foods:      foods,
		Pagination: paginate(total, page, limit),
	}, nil
}

func paginate(total, page, limit int64) models.Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return models.Pagination{
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
	}
}

func (s *FoodService) GetFoodByID(ctx context.Context, id string) (models.Food, error) {
	foodID, err := parseID(id, "Food ID is required.", "Invalid food ID.")
	if err != nil {
		return models.Food{}, err
	}

	food, err := s.foods.FindByID(ctx, foodID)
	if err != nil {
		return models.Food{}, fromStore(err, "Food item not found")
	}
	return food, nil
}

// GetNearbyFoods returns the foods inside geo.NearbyRadius of the query point,
// closest first.
func (s *FoodService) GetNearbyFoods(ctx context.Context, latitude, longitude string) ([]models.Food, error) {
	latitude, longitude = strings.TrimSpace(latitude), strings.TrimSpace(longitude)
	if latitude == "" || longitude == "" {
		return nil, badRequest("Latitude and Longitude are required.")
	}

	lat, latErr := strconv.ParseFloat(latitude, 64)
	lng, lngErr := strconv.ParseFloat(longitude, 64)
	if latErr != nil || lngErr != nil {
		return nil, badRequest("Latitude and Longitude must be numbers.")
	}

	foods, err := s.foods.Nearby(ctx, lat, lng)
	if err != nil {
		return nil, internal(err)
	}

	sort.SliceStable(foods, func(i, j int) bool {
		di := geo.PlanarDistance(float64(foods[i].Latitude), float64(foods[i].Longitude), lat, lng)
		dj := geo.PlanarDistance(float64(foods[j].Latitude), float64(foods[j].Longitude), lat, lng)
		return di < dj
	})
	return foods, nil
}

func (s *FoodService) GetFoodByUser(ctx context.Context, userID string) ([]models.Food, error) {
	owner, err := parseID(userID, "User ID is required.", "Invalid user ID.")
	if err != nil {
		return nil, err
	}

	foods, err := s.foods.ByUser(ctx, owner)
	if err != nil {
		return nil, internal(err)
	}
	if len(foods) == 0 {
		return nil, notFoundError("No foods found for the given user.")
	}
	return foods, nil
}

func (s *FoodService) SearchFood(ctx context.Context, query string) ([]models.Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, badRequest("Search query is required.")
	}

	foods, err := s.foods.Search(ctx, query)
	if err != nil {
		return nil, internal(err)
	}
	if len(foods) == 0 {
		return nil, notFoundError("No foods matched your search.")
	}
	return foods, nil
}

// FoodQRCode renders a PNG QR code linking to the food's public page.
func (s *FoodService) FoodQRCode(ctx context.Context, id string) ([]byte, error) {
	food, err := s.GetFoodByID(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qr.Generate(food.ID)
	if err != nil {
		return nil, internal(err)
	}
	return png, nil
}

// reviewInvalid reports a failed rating with ratingMsg and any other field
// through invalidFields.
func reviewInvalid(err error, ratingMsg string) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "rating" {
				return validationFailed(ratingMsg, err)
			}
		}
	}
	return invalidFields(err)
}

func invalidFields(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return validationFailed("Validation failed.", err)
	}

	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return validationFailed("Invalid value for "+strings.Join(names, ", ")+".", err)
}
