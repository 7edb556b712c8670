package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	sel := g.Group("/boxes/:id/selection", authRequired)
	{
		sel.GET("", h.Get)
		sel.POST("/toggle", h.Toggle)
		sel.DELETE("", h.Clear)
	}
}
