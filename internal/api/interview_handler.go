package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// maxResumeSize caps the uploaded resume part at 5 MB.
const maxResumeSize = 5 << 20

// InterviewHandler handles the interview lifecycle endpoints: setup,
// retrieval and answer submission.
type InterviewHandler struct {
	interviewService core.InterviewService
	logger           *zap.Logger
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(is core.InterviewService, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{interviewService: is, logger: logger}
}

// mapInterviewErrorToStatus maps errors from core.InterviewService to HTTP status codes.
func (h *InterviewHandler) mapInterviewErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInterviewNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrInterviewNotFound.Error()})
	case errors.Is(err, core.ErrForbiddenAccess):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: core.ErrForbiddenAccess.Error()})
	case errors.Is(err, core.ErrInterviewLimitReached):
		c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: core.ErrInterviewLimitReached.Error()})
	case errors.Is(err, core.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrSessionNotFound.Error()})
	case errors.Is(err, core.ErrSessionCompleted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrSessionCompleted.Error()})
	case errors.Is(err, core.ErrOutOfOrderAnswer):
		c.JSON(http.StatusConflict, ErrorResponse{Error: core.ErrOutOfOrderAnswer.Error()})
	case errors.Is(err, core.ErrEmptyAnswer):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrEmptyAnswer.Error()})
	default:
		h.logger.Error("Interview service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// Setup handles POST /api/interview/setup (multipart form).
func (h *InterviewHandler) Setup(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.SetupInterviewRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	// The resume part is optional; when present it feeds question generation.
	resumeText := ""
	fileHeader, err := c.FormFile("resume")
	if err == nil && fileHeader != nil {
		if fileHeader.Size > maxResumeSize {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Resume file exceeds the 5 MB limit"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read resume file", Details: err.Error()})
			return
		}
		defer file.Close()
		raw, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not read resume file", Details: err.Error()})
			return
		}
		resumeText = string(raw)
	}

	interview, err := h.interviewService.Setup(c.Request.Context(), userID.(string), req, resumeText)
	if err != nil {
		h.mapInterviewErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

// List handles GET /api/interview.
func (h *InterviewHandler) List(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	interviews, err := h.interviewService.ListByOwner(c.Request.Context(), userID.(string))
	if err != nil {
		h.mapInterviewErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, interviews)
}

// Get handles GET /api/interview/:id.
func (h *InterviewHandler) Get(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	interviewID := c.Param("id")
	if interviewID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Interview ID is required"})
		return
	}

	interview, session, err := h.interviewService.GetByID(c.Request.Context(), userID.(string), interviewID)
	if err != nil {
		h.mapInterviewErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interview": interview, "session": session})
}

// SubmitAnswer handles POST /api/interview/:id/answer.
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	interviewID := c.Param("id")
	if interviewID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Interview ID is required"})
		return
	}

	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if *req.QuestionID < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "questionId must not be negative"})
		return
	}

	result, err := h.interviewService.SubmitAnswer(c.Request.Context(), userID.(string), interviewID, *req.QuestionID, req.Answer)
	if err != nil {
		h.mapInterviewErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
