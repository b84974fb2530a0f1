package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
)

// AuthHandler handles the profile endpoints driven by the verified
// Firebase identity: registration, login and profile lifecycle.
type AuthHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{userService: us, logger: logger}
}

// mapUserErrorToStatus maps errors from core.UserService to HTTP status codes.
func (h *AuthHandler) mapUserErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	default:
		h.logger.Error("User service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// identityFromContext reads the claims set by the auth middleware.
func identityFromContext(c *gin.Context) (userID, email, name string, ok bool) {
	id, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", "", "", false
	}
	if v, exists := c.Get(middleware.ContextUserEmail); exists {
		email, _ = v.(string)
	}
	if v, exists := c.Get(middleware.ContextUserName); exists {
		name, _ = v.(string)
	}
	return id.(string), email, name, true
}

// Register handles POST /api/auth/register.
// Idempotent: an existing profile is returned unchanged.
func (h *AuthHandler) Register(c *gin.Context) {
	userID, email, name, ok := identityFromContext(c)
	if !ok {
		return
	}

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID, email, name)
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, RegisterResponse{User: user, Created: created})
}

// Login handles POST /api/auth/login. Unlike Register it never creates
// a profile; an unknown identity is a 404.
func (h *AuthHandler) Login(c *gin.Context) {
	userID, _, _, ok := identityFromContext(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
