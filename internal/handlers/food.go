package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodreview/internal/middleware"
	"foodreview/internal/models"
	"foodreview/internal/service"
)

func (h *Handler) CreateFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/food/create"
		defer h.handlePanic(c, route)

		userID, ok := middleware.UserID(c)
		if !ok {
			h.respondWithStatus(c, http.StatusForbidden, route, "Access denied. No token provided.")
			return
		}

		var req service.CreateFoodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.respondWithStatus(c, http.StatusBadRequest, route, msgInvalidBody)
			return
		}

		ctx, cancel := h.requestContext(c)
		defer cancel()

		food, err := h.foods.CreateFood(ctx, req, userID)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Food item created successfully",
			"data":    food,
		})
	}
}

func (h *Handler) EditFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/food/edit/:id"
		defer h.handlePanic(c, route)

		var update models.FoodUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			h.respondWithStatus(c, http.StatusBadRequest, route, msgInvalidBody)
			return
		}

		ctx, cancel := h.requestContext(c)
		defer cancel()

		food, err := h.foods.EditFood(ctx, c.Param("id"), update)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Food updated successfully.",
			"data":    food,
		})
	}
}

func (h *Handler) DeleteFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/food/delete/:id"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		if err := h.foods.DeleteFood(ctx, c.Param("id")); err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food deleted successfully."})
	}
}

func (h *Handler) GetAllFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/food/getall"
		defer h.handlePanic(c, route)

		page, limit := parsePaginationParams(c.Query("page"), c.Query("limit"))

		ctx, cancel := h.requestContext(c)
		defer cancel()

		result, err := h.foods.GetAllFoods(ctx, page, limit)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"data":       nonNil(result.Foods),
			"pagination": result.Pagination,
		})
	}
}

func (h *Handler) GetFoodByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/food/get/:id"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		food, err := h.foods.GetFoodByID(ctx, c.Param("id"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": food})
	}
}

func (h *Handler) GetNearbyFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/food/getnearbyfood"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		foods, err := h.foods.GetNearbyFoods(ctx, c.Query("latitude"), c.Query("longitude"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": nonNil(foods)})
	}
}

func (h *Handler) GetFoodByUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/food/fetfoodbyuser/:userId"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		foods, err := h.foods.GetFoodByUser(ctx, c.Param("userId"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": foods})
	}
}

func (h *Handler) SearchFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/food/search"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		foods, err := h.foods.SearchFood(ctx, c.Query("query"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": foods})
	}
}

func (h *Handler) FoodQRCode() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/food/qrcode/:id"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		png, err := h.foods.FoodQRCode(ctx, c.Param("id"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, "image/png", png)
	}
}

func nonNil(foods []models.Food) []models.Food {
	if foods == nil {
		return []models.Food{}
	}
	return foods
}

// callerID is the authenticated user, or the nil id for anonymous requests.
func callerID(c *gin.Context) primitive.ObjectID {
	id, _ := middleware.UserID(c)
	return id
}
