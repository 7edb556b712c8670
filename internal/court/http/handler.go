package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playbox/box-booking-backend/internal/court"
	"github.com/playbox/box-booking-backend/internal/pkg/request"
)

type Handler struct {
	service court.Service
}

func NewHandler(service court.Service) *Handler {
	return &Handler{service: service}
}

// ListByBox returns the courts of one box, ordered by id.
func (h *Handler) ListByBox(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	courts, err := h.service.ListByBox(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, court.ErrInvalidBox) {
			c.JSON(http.StatusNotFound, gin.H{"error": "box not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, gin.H{"courts": items})
}
