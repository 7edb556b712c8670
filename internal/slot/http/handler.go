package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playbox/box-booking-backend/internal/pkg/request"
	"github.com/playbox/box-booking-backend/internal/pkg/response"
	"github.com/playbox/box-booking-backend/internal/slot"
)

type Handler struct {
	service slot.Service
}

func NewHandler(service slot.Service) *Handler {
	return &Handler{service: service}
}

// Feed serves the slot page for one court on one date. The date defaults
// to today, matching the booking screen's initial state.
func (h *Handler) Feed(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
		return
	}

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	feed, err := h.service.GetFeed(c.Request.Context(), req.ID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewFeedResponse(feed, req.ID, date))
}
