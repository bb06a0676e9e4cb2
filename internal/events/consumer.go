package events

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"foodreview/internal/models"
	"foodreview/internal/store"
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type RatingSource interface {
	AverageRating(ctx context.Context, foodID primitive.ObjectID) (float64, int64, error)
}

type RatingSink interface {
	SetRating(ctx context.Context, id primitive.ObjectID, rating *float64) error
}

// Consumer keeps each food's rating equal to the mean of its reviews by
// recomputing it whenever a review event for that food arrives.
type Consumer struct {
	reader  messageReader
	reviews RatingSource
	foods   RatingSink
	log     *zap.Logger
}

func NewConsumer(brokers []string, topic, groupID string, reviews RatingSource, foods RatingSink, log *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	return newConsumer(reader, reviews, foods, log)
}

func newConsumer(reader messageReader, reviews RatingSource, foods RatingSink, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{reader: reader, reviews: reviews, foods: foods, log: log}
}

// Run reads until ctx is cancelled, then closes the reader. Malformed messages
// and failed recomputations are logged and skipped.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	c.log.Info("rating aggregator started")
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.log.Info("rating aggregator stopped")
				return nil
			}
			c.log.Error("read review event", zap.Error(err))
			continue
		}

		var event models.ReviewEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn("skip malformed review event", zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}

		if err := c.Handle(ctx, event); err != nil {
			c.log.Error("recompute food rating",
				zap.String("food_id", event.FoodID.Hex()),
				zap.Error(err),
			)
		}
	}
}

// Handle recomputes the rating of the event's food. A food left without
// reviews has its rating removed; a food that no longer exists is ignored.
func (c *Consumer) Handle(ctx context.Context, event models.ReviewEvent) error {
	switch event.Type {
	case models.ReviewCreated, models.ReviewUpdated, models.ReviewDeleted:
	default:
		c.log.Debug("ignore review event", zap.String("type", event.Type))
		return nil
	}
	if event.FoodID.IsZero() {
		return nil
	}

	avg, count, err := c.reviews.AverageRating(ctx, event.FoodID)
	if err != nil {
		return err
	}

	var rating *float64
	if count > 0 {
		rounded := math.Round(avg*100) / 100
		rating = &rounded
	}

	err = c.foods.SetRating(ctx, event.FoodID, rating)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	c.log.Info("food rating refreshed",
		zap.String("food_id", event.FoodID.Hex()),
		zap.Int64("reviews", count),
	)
	return nil
}
