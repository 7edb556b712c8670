package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playbox/box-booking-backend/internal/auth"
	"github.com/playbox/box-booking-backend/internal/pkg/request"
	"github.com/playbox/box-booking-backend/internal/pkg/response"
	"github.com/playbox/box-booking-backend/internal/selection"
)

type Handler struct {
	service selection.Service
}

func NewHandler(service selection.Service) *Handler {
	return &Handler{service: service}
}

// Get returns the caller's selection for one box.
func (h *Handler) Get(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	var q ContextQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	set, err := h.service.Get(c.Request.Context(), userID, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSelectionResponse(set, q.Date, q.CourtID))
}

// Toggle flips one slot in the caller's selection and echoes the updated
// session.
func (h *Handler) Toggle(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	var body ToggleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	set, err := h.service.Toggle(c.Request.Context(), userID, req.ID, body.CourtID, body.Date, body.SlotID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSelectionResponse(set, body.Date, body.CourtID))
}

// Clear drops the caller's selection for one box.
func (h *Handler) Clear(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	if err := h.service.Clear(c.Request.Context(), userID, req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
