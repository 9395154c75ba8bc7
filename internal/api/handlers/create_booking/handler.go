package create_booking

import (
	"errors"
	"net/http"

	"github.com/polishnail/salon-booking-service/internal/api/handlers"
	createBooking "github.com/polishnail/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSubmissionRejected = "booking could not be processed"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if fieldErrs, ok := createBooking.AsFieldErrors(err); ok {
			h.logger.Warn("POST /bookings - Validation failed: %v", fieldErrs)
			handlers.RespondValidationErrors(w, fieldErrs)
			return
		}

		if errors.Is(err, createBooking.ErrSubmissionRejected) {
			// Honeypot: отвечаем без деталей, тем же статусом, что и валидация
			h.logger.Warn("POST /bookings - Submission rejected")
			handlers.RespondBadRequest(w, msgSubmissionRejected)
			return
		}

		h.logger.Error("POST /bookings - Failed to create booking: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.ID, req.BookingDate, req.BookingTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
