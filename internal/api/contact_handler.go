package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService core.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(cs core.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: logger}
}

// Submit handles POST /api/contact. No authentication: the form is
// reachable by visitors without an account.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidContactCategory) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidContactCategory.Error()})
			return
		}
		h.logger.Error("Contact service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Message received", Data: msg})
}
