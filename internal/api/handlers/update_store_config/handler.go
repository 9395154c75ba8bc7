package update_store_config

import (
	"errors"
	"net/http"

	"github.com/polishnail/salon-booking-service/internal/api/handlers"
	configService "github.com/polishnail/salon-booking-service/internal/service/config"
	"github.com/polishnail/salon-booking-service/internal/service/config/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/store/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /store/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, configService.ErrInvalidInput) {
			h.logger.Warn("PUT /store/config - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /store/config - Failed to update store config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /store/config - Store config updated, name=%q", result.StoreName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
