package booking

import (
	"errors"
	"fmt"
	"net/http"

	"coworking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	spaces   SpaceReader
	services ServiceReader
}

func NewHandler(service *Service, spaces SpaceReader, services ServiceReader) *Handler {
	return &Handler{service: service, spaces: spaces, services: services}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.buildDraft(c, req)
	if err != nil {
		return // buildDraft already wrote the response
	}

	receipt, err := h.service.Commit(c.Request.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking draft")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "Selected space is no longer available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	draft.Clear()
	response.Success(c, http.StatusCreated, CommitResponse{
		BookingID:      receipt.BookingID,
		Total:          receipt.Total,
		EstimatedHours: receipt.EstimatedHours,
	})
}

// buildDraft assembles the draft from the request, resolving rates and
// prices from reference data rather than trusting the client.
func (h *Handler) buildDraft(c *gin.Context, req CommitRequest) (*Draft, error) {
	draft := NewDraft()
	draft.SetInterval(req.Checkin, req.Checkout)
	draft.Customer = CustomerInfo{
		Name:  req.Customer.Name,
		Phone: req.Customer.Phone,
		Email: req.Customer.Email,
	}

	for _, spaceID := range req.SpaceIDs {
		sp, err := h.spaces.GetByID(c.Request.Context(), spaceID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load space")
			return nil, err
		}
		if sp == nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("Unknown space %d", spaceID))
			return nil, errors.New("unknown space")
		}
		st, err := h.spaces.GetTypeByID(c.Request.Context(), sp.SpaceTypeID)
		if err != nil || st == nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load space type")
			return nil, errors.New("unknown space type")
		}
		draft.AddSpace(SelectedSpace{
			SpaceID:         sp.ID,
			SpaceTypeID:     st.ID,
			SpaceTypeName:   st.Name,
			UnitPriceHourly: st.UnitPriceHourly,
		})
	}

	for _, sel := range req.Services {
		svc, err := h.services.GetByID(c.Request.Context(), sel.ServiceID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load service")
			return nil, err
		}
		if svc == nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("Unknown service %d", sel.ServiceID))
			return nil, errors.New("unknown service")
		}
		draft.AddService(SelectedService{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Unit:      svc.Unit,
			UnitPrice: svc.UnitPrice,
		}, sel.Quantity)
	}

	return draft, nil
}
