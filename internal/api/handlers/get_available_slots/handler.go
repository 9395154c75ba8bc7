package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/polishnail/salon-booking-service/internal/api/handlers"
	"github.com/polishnail/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/polishnail/salon-booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "query parameter 'date' is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Дата разбирается в локальной зоне сервера, как и при создании
	// бронирования: окно записи считается от локального "сегодня"
	date, err := time.ParseInLocation(domain.DateFormat, dateParam, time.Local)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidDate) {
			h.logger.Warn("GET /availability - Invalid date %q", dateParam)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /availability - Failed to get slots for %s: %v", dateParam, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - %d slots available on %s", len(result.Slots), dateParam)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
