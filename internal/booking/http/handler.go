package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/playbox/box-booking-backend/internal/auth"
	"github.com/playbox/box-booking-backend/internal/booking"
	"github.com/playbox/box-booking-backend/internal/pkg/response"
	"github.com/playbox/box-booking-backend/internal/selection"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create confirms the caller's grouped submission as a booking.
func (h *Handler) Create(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, selection.Payload{
		BoxID:         req.BoxID,
		SelectedSlots: req.SelectedSlots,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b, booking.Classify(b, time.Now())))
}

// Get returns one of the caller's bookings.
func (h *Handler) Get(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	cb, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(cb.Booking, cb.Status))
}

// List returns the caller's booking history, optionally narrowed to one
// status bucket.
func (h *Handler) List(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		UserID:   userID,
		Bucket:   booking.Status(q.Status),
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	classified, total, err := h.service.List(c.Request.Context(), filter, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, 0, len(classified))
	for _, cb := range classified {
		items = append(items, NewBookingResponse(cb.Booking, cb.Status))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, q.Page, q.PageSize, total))
}

// Cancel soft-deletes one of the caller's bookings.
func (h *Handler) Cancel(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
