package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amincahcepu/Remote-Docling/api/handlers"
	"github.com/amincahcepu/Remote-Docling/api/middleware"
)

// SetupRoutes wires all routes. The paths are part of the public
// contract and are not versioned or grouped.
func SetupRoutes(r *gin.Engine, h *handlers.Handlers, allowedOrigins []string) {
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/health", h.Meta.Health)
	r.GET("/", h.Meta.Root)
	r.POST("/convert-pdf", h.Convert.ConvertPDF)
}
