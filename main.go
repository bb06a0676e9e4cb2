package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"foodreview/internal/auth"
	"foodreview/internal/config"
	"foodreview/internal/database"
	"foodreview/internal/events"
	"foodreview/internal/handlers"
	"foodreview/internal/logging"
	"foodreview/internal/ratelimit"
	"foodreview/internal/service"
	"foodreview/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "foodreview",
		Short:         "Food review API server and workers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "aggregate",
			Short: "Consume review events and keep food ratings up to date",
			RunE:  runAggregate,
		},
		&cobra.Command{
			Use:   "ensure-indexes",
			Short: "Create the MongoDB indexes and exit",
			RunE:  runEnsureIndexes,
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "foodreview:", err)
		os.Exit(1)
	}
}

// app is what every command needs: configuration, a logger and the database.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	client *mongo.Client
	db     *mongo.Database
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	if cfg.DotEnvErr != nil {
		log.Info(".env not loaded", zap.Error(cfg.DotEnvErr))
	}

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.DBName)
	log.Info("MongoDB connected", zap.String("db", db.Name()))

	return &app{cfg: cfg, log: log, client: client, db: db}, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.client.Disconnect(ctx); err != nil {
		a.log.Warn("mongo disconnect", zap.Error(err))
	}
	_ = a.log.Sync()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.EnsureIndexes(ctx, a.db, a.log); err != nil {
		a.log.Warn("index bootstrap incomplete", zap.Error(err))
	}

	publisher, closePublisher := newPublisher(a.cfg, a.log)
	defer closePublisher()

	issuer := auth.NewIssuer(a.cfg.JWTSecret, a.cfg.TokenTTL)
	users := store.NewUserStore(a.db)
	foods := store.NewFoodStore(a.db)
	reviews := store.NewReviewStore(a.db)

	h := handlers.New(
		service.NewUserService(users, issuer),
		service.NewFoodService(foods, reviews, publisher, service.DefaultQRGenerator{BaseURL: a.cfg.PublicBaseURL}, a.log),
		service.NewReviewService(reviews, publisher, a.log),
		a.log,
		handlers.Options{
			Timeout:      a.cfg.DBTimeout,
			ExposeErrors: a.cfg.ExposeErrorDetails,
			Ping: func(ctx context.Context) error {
				return database.Ping(ctx, a.db)
			},
		},
	)

	routerCfg := handlers.RouterConfig{
		Verifier:            issuer,
		RequireAuthOnWrites: a.cfg.RequireAuthOnWrites,
		CORSOrigins:         a.cfg.CORSAllowedOrigins,
		TrustedProxies:      a.cfg.TrustedProxies,
	}
	if a.cfg.RateLimitEnabled() {
		rdb := redis.NewClient(&redis.Options{Addr: a.cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			a.log.Warn("redis unreachable, login limiter fails open", zap.Error(err))
		}
		routerCfg.LoginLimiter = ratelimit.New(rdb, "login", a.cfg.LoginRateLimit, a.cfg.LoginRateWindow)
	}

	if a.cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           handlers.NewRouter(h, routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type publisherCloser interface {
	service.ReviewPublisher
	Close() error
}

func newPublisher(cfg config.Config, log *zap.Logger) (service.ReviewPublisher, func()) {
	var pub publisherCloser = events.NopPublisher{}
	if cfg.EventsEnabled() {
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaReviewTopic, cfg.KafkaPublishTimeout)
		log.Info("review events enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaReviewTopic),
		)
	}
	return pub, func() {
		if err := pub.Close(); err != nil {
			log.Warn("close review publisher", zap.Error(err))
		}
	}
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if !a.cfg.EventsEnabled() {
		return errors.New("aggregate: KAFKA_BROKERS is not set")
	}

	consumer := events.NewConsumer(
		a.cfg.KafkaBrokers,
		a.cfg.KafkaReviewTopic,
		a.cfg.KafkaGroupID,
		store.NewReviewStore(a.db),
		store.NewFoodStore(a.db),
		a.log,
	)
	return consumer.Run(ctx)
}

func runEnsureIndexes(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return database.EnsureIndexes(ctx, a.db, a.log)
}
