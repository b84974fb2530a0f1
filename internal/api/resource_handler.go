package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/core"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/filter"
)

// ResourceHandler serves the filterable learning-resource catalog.
type ResourceHandler struct {
	resourceService core.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(rs core.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: rs}
}

// List handles GET /api/resources. Every query parameter narrows the
// result; repeated category/difficulty/duration values widen that one
// predicate.
func (h *ResourceHandler) List(c *gin.Context) {
	sel := filter.Selection{
		Search:       c.Query("search"),
		Categories:   c.QueryArray("category"),
		Difficulties: c.QueryArray("difficulty"),
		Durations:    c.QueryArray("duration"),
	}

	if raw := c.Query("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "minRating must be a non-negative number"})
			return
		}
		sel.MinRating = minRating
	}

	for _, d := range sel.Durations {
		if d != filter.DurationShort && d != filter.DurationMedium && d != filter.DurationLong {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "duration must be one of short, medium, long"})
			return
		}
	}

	c.JSON(http.StatusOK, h.resourceService.List(sel))
}
