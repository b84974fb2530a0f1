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

// MockInterviewHandler handles peer mock-interview scheduling.
type MockInterviewHandler struct {
	mockService core.MockInterviewService
	logger      *zap.Logger
}

// NewMockInterviewHandler creates a new MockInterviewHandler.
func NewMockInterviewHandler(ms core.MockInterviewService, logger *zap.Logger) *MockInterviewHandler {
	return &MockInterviewHandler{mockService: ms, logger: logger}
}

func (h *MockInterviewHandler) mapMockErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidScheduleTime):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidScheduleTime.Error()})
	case errors.Is(err, core.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidDuration.Error()})
	default:
		h.logger.Error("Mock-interview service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// List handles GET /api/mock-interview. With ?upcoming=1 only sessions
// scheduled from now on are returned.
func (h *MockInterviewHandler) List(c *gin.Context) {
	upcomingOnly := c.Query("upcoming") == "1" || c.Query("upcoming") == "true"

	sessions, err := h.mockService.List(c.Request.Context(), upcomingOnly)
	if err != nil {
		h.mapMockErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Schedule handles POST /api/mock-interview. The caller becomes the host.
func (h *MockInterviewHandler) Schedule(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.ScheduleMockInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	session, err := h.mockService.Schedule(c.Request.Context(), userID.(string), req)
	if err != nil {
		h.mapMockErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}
