package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
)

// RegisterRoutes mounts the API under /api plus a health probe.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	h.Auth.RegisterRoutes(api)
	h.Profile.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
	h.Admin.RegisterRoutes(api)
}
