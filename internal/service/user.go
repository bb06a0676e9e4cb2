package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodreview/internal/models"
)

type UserService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewUserService(users UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Login finds the user owning mobileNumber, creating it on first sight, and
// returns a signed token for it.
func (s *UserService) Login(ctx context.Context, mobileNumber string) (string, error) {
	mobileNumber = strings.TrimSpace(mobileNumber)
	if mobileNumber == "" {
		return "", badRequest("Mobile number is required.")
	}
	candidate := models.User{Name: models.DefaultUserName, MobileNumber: mobileNumber}
	if err := models.Validate(candidate); err != nil {
		return "", validationFailed("Mobile number must be exactly 10 digits.", err)
	}

	user, err := s.users.FindOrCreateByMobile(ctx, mobileNumber)
	if err != nil {
		return "", internal(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", internal(err)
	}
	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (models.User, error) {
	userID, err := parseID(id, "User ID is required.", "Invalid user ID.")
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, fromStore(err, "User not found")
	}
	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

// parseID validates a hex ObjectID taken from a path or body.
func parseID(raw, missing, invalid string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, badRequest(missing)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, &Error{Kind: KindBadRequest, Message: invalid, Err: err}
	}
	return id, nil
}
