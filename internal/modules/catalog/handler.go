package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"termine/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
}

// ListServices handles GET /api/v1/services
func (h *Handler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"services": h.service.Services(),
	})
}
