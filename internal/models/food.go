package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a listing at a physical location, created by a user.
type Food struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name" validate:"required"`
	ShopName    string              `bson:"shop_name,omitempty" json:"shop_name,omitempty"`
	Category    string              `bson:"category,omitempty" json:"category,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Address     string              `bson:"address" json:"address" validate:"required"`
	Rating      *float64            `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,gte=0"`
	Review      string              `bson:"review,omitempty" json:"review,omitempty"`
	Latitude    Coordinate          `bson:"latitude" json:"latitude"`
	Longitude   Coordinate          `bson:"longitude" json:"longitude"`
	UserID      *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// FoodUpdate carries the fields of a partial food edit. Nil means untouched.
type FoodUpdate struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	ShopName    *string  `json:"shop_name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Address     *string  `json:"address" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0"`
	Review      *string  `json:"review"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Fields returns the bson $set document for the update, or an empty map when
// nothing was supplied.
func (u FoodUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.ShopName != nil {
		fields["shop_name"] = *u.ShopName
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Address != nil {
		fields["address"] = *u.Address
	}
	if u.Rating != nil {
		fields["rating"] = *u.Rating
	}
	if u.Review != nil {
		fields["review"] = *u.Review
	}
	if u.Latitude != nil {
		fields["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		fields["longitude"] = *u.Longitude
	}
	return fields
}

// Pagination describes one page of a listing.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
}
