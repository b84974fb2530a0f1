package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/middleware"
)

// ReportHandler handles retrieval of completed-interview reports.
type ReportHandler struct {
	reportService core.ReportService
	logger        *zap.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs core.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportService: rs, logger: logger}
}

func (h *ReportHandler) mapReportErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrReportNotFound.Error()})
	case errors.Is(err, core.ErrForbiddenAccess):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: core.ErrForbiddenAccess.Error()})
	default:
		h.logger.Error("Report service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// List handles GET /api/report. With ?interviewId= it returns the single
// report for that interview; otherwise all of the caller's reports.
func (h *ReportHandler) List(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	if interviewID := c.Query("interviewId"); interviewID != "" {
		report, err := h.reportService.GetByInterviewID(c.Request.Context(), userID.(string), interviewID)
		if err != nil {
			h.mapReportErrorToStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	reports, err := h.reportService.ListByOwner(c.Request.Context(), userID.(string))
	if err != nil {
		h.mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// Get handles GET /api/report/:interviewId.
func (h *ReportHandler) Get(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	interviewID := c.Param("interviewId")
	if interviewID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Interview ID is required"})
		return
	}

	report, err := h.reportService.GetByInterviewID(c.Request.Context(), userID.(string), interviewID)
	if err != nil {
		h.mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
