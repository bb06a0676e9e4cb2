package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultUserName is assigned to users created implicitly by their first login.
const DefaultUserName = "New User"

// User is an account identified by its mobile number.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	MobileNumber string             `bson:"mobile_no" json:"mobile_no" validate:"required,mobile"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
