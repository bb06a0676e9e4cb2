package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodreview/internal/service"
)

func (h *Handler) GetAllReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/review/getall"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		reviews, err := h.reviews.GetAllReviews(ctx)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
	}
}

func (h *Handler) GetReviewsByUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/review/user/:userId"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		reviews, err := h.reviews.GetReviewsByUserID(ctx, c.Param("userId"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
	}
}

func (h *Handler) GetReviewsByFoodID() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/review/food/:foodId"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		reviews, err := h.reviews.GetReviewsByFoodID(ctx, c.Param("foodId"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
	}
}

func (h *Handler) AddReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/review/add"
		defer h.handlePanic(c, route)

		var req service.AddReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.respondWithStatus(c, http.StatusBadRequest, route, msgInvalidBody)
			return
		}

		ctx, cancel := h.requestContext(c)
		defer cancel()

		review, err := h.reviews.AddReview(ctx, req, callerID(c))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Review added successfully",
			"review":  review,
		})
	}
}

func (h *Handler) UpdateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/review/edit/:id"
		defer h.handlePanic(c, route)

		var req service.UpdateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.respondWithStatus(c, http.StatusBadRequest, route, msgInvalidBody)
			return
		}

		ctx, cancel := h.requestContext(c)
		defer cancel()

		review, err := h.reviews.UpdateReview(ctx, c.Param("id"), req)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Review updated successfully.",
			"data":    review,
		})
	}
}

func (h *Handler) DeleteReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/review/delete/:id"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		review, err := h.reviews.DeleteReview(ctx, c.Param("id"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Review deleted successfully.",
			"data":    review,
		})
	}
}
