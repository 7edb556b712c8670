package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	bookings := g.Group("/bookings", authRequired)
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.DELETE("/:id", h.Cancel)
	}
}
