package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/boxes")

	// Box discovery is public; booking flows require auth elsewhere.
	group.GET("", h.List)
	group.GET("/:id", h.Get)
}
