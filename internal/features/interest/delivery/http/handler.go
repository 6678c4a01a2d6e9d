package http

import (
	"errors"
	"net/http"
	"strconv"

	"community-portal-backend/internal/features/interest/models"
	"community-portal-backend/internal/features/interest/service"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	service service.InterestService
}

func NewInterestHandler(service service.InterestService) *InterestHandler {
	return &InterestHandler{
		service: service,
	}
}

func (h *InterestHandler) RegisterRoutes(router *gin.RouterGroup) {
	matrimony := router.Group("/matrimony")
	{
		matrimony.POST("/interest", h.Express)
		matrimony.GET("/interest/:userId", h.ListByUser)
	}
}

// @Summary Express interest in a profile
// @Description Records interest from one approved member toward another. When the interest turns out to be reciprocal, both members get a match notification.
// @Tags matrimony
// @Accept json
// @Produce json
// @Param request body models.ExpressRequest true "Interest pair"
// @Success 200 {object} models.ExpressResponse "Interest outcome"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "User not approved"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /matrimony/interest [post]
func (h *InterestHandler) Express(c *gin.Context) {
	var req models.ExpressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.service.Express(c.Request.Context(), req.FromUserID, req.ToUserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfInterest):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Cannot express interest in own profile"})
		case errors.Is(err, service.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrNotApproved):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Both profiles must be approved"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to record interest"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary List interests for a user
// @Description Lists interests sent and received by a member, with mutual-match flags
// @Tags matrimony
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.InterestList "Sent and received interests"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /matrimony/interest/{userId} [get]
func (h *InterestHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	list, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrNotApproved):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Profile must be approved"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to list interests"})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}
