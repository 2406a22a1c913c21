package catalog

import (
	"net/http"

	"coworking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/space-types", h.ListSpaceTypes)
	rg.GET("/catalog/services", h.ListServices)
}

func (h *Handler) ListSpaceTypes(c *gin.Context) {
	types, err := h.service.ListSpaceTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load space types")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space_types": types})
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}
