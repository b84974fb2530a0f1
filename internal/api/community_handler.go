package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// CommunityHandler handles the community question board.
type CommunityHandler struct {
	communityService core.CommunityService
	logger           *zap.Logger
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(cs core.CommunityService, logger *zap.Logger) *CommunityHandler {
	return &CommunityHandler{communityService: cs, logger: logger}
}

func (h *CommunityHandler) mapCommunityErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrQuestionNotFound.Error()})
	default:
		h.logger.Error("Community service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// List handles GET /api/community-qa, newest questions first.
func (h *CommunityHandler) List(c *gin.Context) {
	questions, err := h.communityService.List(c.Request.Context())
	if err != nil {
		h.mapCommunityErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Post handles POST /api/community-qa.
func (h *CommunityHandler) Post(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.PostQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	question, err := h.communityService.Post(c.Request.Context(), userID.(string), req)
	if err != nil {
		h.mapCommunityErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// Answer handles POST /api/community-qa/:id/answers.
func (h *CommunityHandler) Answer(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	questionID := c.Param("id")
	if questionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Question ID is required"})
		return
	}

	var req models.PostAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	question, err := h.communityService.Answer(c.Request.Context(), userID.(string), questionID, req)
	if err != nil {
		h.mapCommunityErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}
