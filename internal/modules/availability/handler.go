package availability

import (
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/availability", h.FindAvailable)
}

func (h *Handler) FindAvailable(c *gin.Context) {
	spaceTypeID, err := strconv.ParseInt(c.Query("space_type_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid space_type_id")
		return
	}

	checkin, err := time.Parse(time.RFC3339, c.Query("checkin"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid checkin, expected RFC3339")
		return
	}
	checkout, err := time.Parse(time.RFC3339, c.Query("checkout"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid checkout, expected RFC3339")
		return
	}

	spaces, err := h.service.FindAvailable(c.Request.Context(), spaceTypeID, checkin, checkout)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkout must be after checkin")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve availability")
		return
	}

	ids := make([]int64, 0, len(spaces))
	for _, sp := range spaces {
		ids = append(ids, sp.ID)
	}
	response.Success(c, http.StatusOK, AvailabilityResponse{
		SpaceTypeID: spaceTypeID,
		Checkin:     checkin,
		Checkout:    checkout,
		SpaceIDs:    ids,
	})
}
