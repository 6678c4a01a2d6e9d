package http

import (
	"errors"
	"net/http"
	"strconv"

	"community-portal-backend/internal/common/logger"
	"community-portal-backend/internal/common/validation"
	"community-portal-backend/internal/features/approval/models"
	"community-portal-backend/internal/features/approval/service"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	service service.ApprovalService
}

func NewApprovalHandler(service service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{
		service: service,
	}
}

func (h *ApprovalHandler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/approve-user/:id", h.ApproveUser)
	admin.POST("/reject-user/:id", h.RejectUser)
}

// @Summary Approve a pending user
// @Description Records the acting admin's approval. Business outcomes such as a duplicate decision come back with success=false and HTTP 200; callers branch on the success field.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "User ID"
// @Param request body models.ApproveRequest true "Acting admin"
// @Success 200 {object} models.DecisionResponse "Decision outcome"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/approve-user/{id} [post]
func (h *ApprovalHandler) ApproveUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req models.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validation.ValidateName(req.AdminName); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Approve(c.Request.Context(), userID, req.AdminID.Int64(), req.AdminName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error().Err(err).
			Int64("user_id", userID).
			Int64("admin_id", req.AdminID.Int64()).
			Msg("Approve user failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Reject a pending user
// @Description Records the acting admin's rejection with a reason. A prior decision by the same admin is overwritten in place.
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "User ID"
// @Param request body models.RejectRequest true "Acting admin and reason"
// @Success 200 {object} models.DecisionResponse "Decision outcome"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /admin/reject-user/{id} [post]
func (h *ApprovalHandler) RejectUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req models.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validation.ValidateReason(req.Reason); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Reject(c.Request.Context(), userID, req.AdminID.Int64(), req.AdminName, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error().Err(err).
			Int64("user_id", userID).
			Int64("admin_id", req.AdminID.Int64()).
			Msg("Reject user failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject user"})
		return
	}

	c.JSON(http.StatusOK, result)
}
