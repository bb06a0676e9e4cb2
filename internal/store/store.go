// Package store implements MongoDB persistence for users, foods and reviews.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an id or filter matches no document.
var ErrNotFound = errors.New("store: document not found")

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)

	out := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
