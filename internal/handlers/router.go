package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"foodreview/internal/middleware"
)

const msgTooManyLogins = "Too many login attempts, try again later."

type RouterConfig struct {
	Verifier            middleware.TokenVerifier
	RequireAuthOnWrites bool
	CORSOrigins         []string
	// TrustedProxies may rewrite the client IP through X-Forwarded-For.
	// Empty trusts none.
	TrustedProxies      []string
	// LoginLimiter throttles POST /api/user/login when set.
	LoginLimiter        middleware.Limiter
}

// NewRouter wires every route onto a fresh engine.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		h.log.Error("invalid trusted proxies, trusting none", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(h.log),
		middleware.CORS(cfg.CORSOrigins),
	)

	requireAuth := middleware.UserAuth(cfg.Verifier, h.log)
	writeGuard := middleware.AuthGuard(cfg.Verifier, h.log, cfg.RequireAuthOnWrites)

	r.GET("/health", h.Health())

	api := r.Group("/api")

	user := api.Group("/user")
	{
		login := []gin.HandlerFunc{h.Login()}
		if cfg.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{middleware.RateLimit(cfg.LoginLimiter, msgTooManyLogins, h.log)}, login...)
		}
		user.POST("/login", login...)
		user.GET("/getuser/:id", requireAuth, h.GetUser())
		user.GET("/getallusers", requireAuth, h.GetAllUsers())
	}

	food := api.Group("/food")
	{
		food.POST("/create", requireAuth, h.CreateFood())
		food.PUT("/edit/:id", writeGuard, h.EditFood())
		food.DELETE("/delete/:id", writeGuard, h.DeleteFood())
		food.GET("/getall", h.GetAllFoods())
		food.GET("/getnearbyfood", h.GetNearbyFoods())
		food.GET("/fetfoodbyuser/:userId", h.GetFoodByUser())
		food.GET("/search", h.SearchFood())
		food.GET("/get/:id", h.GetFoodByID())
		food.GET("/qrcode/:id", h.FoodQRCode())
	}

	review := api.Group("/review")
	{
		review.GET("/getall", h.GetAllReviews())
		review.GET("/user/:userId", requireAuth, h.GetReviewsByUserID())
		review.GET("/food/:foodId", requireAuth, h.GetReviewsByFoodID())
		review.POST("/add", requireAuth, h.AddReview())
		review.PUT("/edit/:id", writeGuard, h.UpdateReview())
		review.DELETE("/delete/:id", writeGuard, h.DeleteReview())
	}

	h.log.Debug("routes registered", zap.Int("count", len(r.Routes())))
	return r
}
