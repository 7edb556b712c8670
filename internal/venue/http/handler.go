package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playbox/box-booking-backend/internal/pkg/request"
	"github.com/playbox/box-booking-backend/internal/pkg/response"
	"github.com/playbox/box-booking-backend/internal/venue"
)

type Handler struct {
	service venue.Service
}

func NewHandler(service venue.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListBoxesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	boxes, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list boxes"})
		return
	}

	items := make([]BoxResponse, len(boxes))
	for i, b := range boxes {
		items[i] = NewBoxResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "box not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get box"})
		return
	}

	c.JSON(http.StatusOK, NewBoxResponse(b))
}
