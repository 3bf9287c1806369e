package update_shop_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	settingsService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация календаря"
	msgSettingsNotFound   = "настройки календаря не найдены"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateShopConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /settings/calendar - Invalid config: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, settingsService.ErrSettingsNotFound):
			h.logger.Warn("PUT /settings/calendar - Settings not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("PUT /settings/calendar - Failed to update settings: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/calendar - Settings updated successfully: user_id=%d", req.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
