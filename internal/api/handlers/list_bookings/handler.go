package list_bookings

import (
	"errors"
	"net/http"

	"github.com/polishnail/salon-booking-service/internal/api/handlers"
	"github.com/polishnail/salon-booking-service/internal/service/bookings"
	"github.com/polishnail/salon-booking-service/internal/service/bookings/models"
)

const msgInvalidFilter = "invalid filter parameters"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?search=&status=&dateFrom=&dateTo=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{
		Search: query.Get("search"),
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if dateFrom := query.Get("dateFrom"); dateFrom != "" {
		req.DateFrom = &dateFrom
	}
	if dateTo := query.Get("dateTo"); dateTo != "" {
		req.DateTo = &dateTo
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
