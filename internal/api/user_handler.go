package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// UserHandler handles profile reads and updates, bookmarks and the
// public leaderboard.
type UserHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: us, logger: logger}
}

func (h *UserHandler) mapUserErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	default:
		h.logger.Error("User service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// Me handles GET /api/auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID.(string))
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/auth/update-profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID.(string), req)
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteAccount handles DELETE /api/auth/delete. It removes both the
// profile document and the identity-provider record.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID.(string)); err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Account deleted successfully"})
}

// AddBookmark handles POST /api/auth/bookmarks.
func (h *UserHandler) AddBookmark(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.AddBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.AddBookmark(c.Request.Context(), userID.(string), req.RefID)
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RemoveBookmark handles DELETE /api/auth/bookmarks/:refId.
func (h *UserHandler) RemoveBookmark(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	refID := c.Param("refId")
	if refID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bookmark reference ID is required"})
		return
	}

	user, err := h.userService.RemoveBookmark(c.Request.Context(), userID.(string), refID)
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Leaderboard handles GET /api/leaderboard.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	users, err := h.userService.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
