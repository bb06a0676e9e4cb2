package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReviewCreated = "review_created"
	ReviewUpdated = "review_updated"
	ReviewDeleted = "review_deleted"
)

// ReviewEvent is emitted after every review write so that food ratings can be
// recomputed out of band.
type ReviewEvent struct {
	Type      string             `json:"type"`
	ReviewID  primitive.ObjectID `json:"review_id"`
	FoodID    primitive.ObjectID `json:"food_id"`
	UserID    primitive.ObjectID `json:"user_id"`
	Rating    float64            `json:"rating"`
	Timestamp time.Time          `json:"timestamp"`
}

func NewReviewEvent(kind string, r Review) ReviewEvent {
	return ReviewEvent{
		Type:      kind,
		ReviewID:  r.ID,
		FoodID:    r.FoodID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Timestamp: time.Now().UTC(),
	}
}
