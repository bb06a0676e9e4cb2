package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a rating left by a user on a food.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Rating    float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Review    string             `bson:"review,omitempty" json:"review,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id" validate:"required"`
	FoodID    primitive.ObjectID `bson:"food_id" json:"food_id" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReviewAuthor is the slice of a User embedded into listed reviews.
type ReviewAuthor struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// PopulatedReview is a Review whose user_id has been expanded to its author.
// Author is nil when the referenced user no longer exists.
type PopulatedReview struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Rating    float64            `bson:"rating" json:"rating"`
	Review    string             `bson:"review,omitempty" json:"review,omitempty"`
	Author    *ReviewAuthor      `bson:"user_id,omitempty" json:"user_id"`
	FoodID    primitive.ObjectID `bson:"food_id" json:"food_id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
