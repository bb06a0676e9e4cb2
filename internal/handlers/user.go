package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

func (h *Handler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/user/login"
		defer h.handlePanic(c, route)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.respondWithStatus(c, http.StatusBadRequest, route, msgInvalidBody)
			return
		}

		ctx, cancel := h.requestContext(c)
		defer cancel()

		token, err := h.users.Login(ctx, req.MobileNumber)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Logged in successfully",
			"token":   token,
		})
	}
}

func (h *Handler) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/user/getuser/:id"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		user, err := h.users.GetUser(ctx, c.Param("id"))
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

func (h *Handler) GetAllUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/user/getallusers"
		defer h.handlePanic(c, route)

		ctx, cancel := h.requestContext(c)
		defer cancel()

		users, err := h.users.GetAllUsers(ctx)
		if err != nil {
			h.respondWithError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}
