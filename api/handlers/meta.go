package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// ServiceSlug identifies the service in health checks.
	ServiceSlug = "docling-pdf-processor"
	// ServiceTitle is the human-readable service name.
	ServiceTitle = "Docling PDF Processing Service"
	// ServiceVersion is reported by the meta endpoints.
	ServiceVersion = "1.0.0"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// RootResponse describes the service and its endpoints.
type RootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// MetaHandler serves the unauthenticated service metadata endpoints.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Health reports liveness.
func (h *MetaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceSlug,
		Version: ServiceVersion,
	})
}

// Root lists the available endpoints.
func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Service: ServiceTitle,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"health":  "/health",
			"convert": "/convert-pdf",
		},
	})
}
