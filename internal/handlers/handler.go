package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"foodreview/internal/service"
)

const defaultTimeout = 5 * time.Second

// Options tunes the HTTP layer. Zero values fall back to defaults.
type Options struct {
	Timeout      time.Duration
	ExposeErrors bool
	Ping         func(ctx context.Context) error
}

// Handler holds the services behind the /api routes.
type Handler struct {
	users   service.UserServiceInterface
	foods   service.FoodServiceInterface
	reviews service.ReviewServiceInterface
	log     *zap.Logger

	timeout      time.Duration
	exposeErrors bool
	ping         func(ctx context.Context) error
}

func New(
	users service.UserServiceInterface,
	foods service.FoodServiceInterface,
	reviews service.ReviewServiceInterface,
	log *zap.Logger,
	opts Options,
) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Handler{
		users:        users,
		foods:        foods,
		reviews:      reviews,
		log:          log,
		timeout:      opts.Timeout,
		exposeErrors: opts.ExposeErrors,
		ping:         opts.Ping,
	}
}
