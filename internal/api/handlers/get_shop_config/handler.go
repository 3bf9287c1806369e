package get_shop_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	settingsService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/settings"
)

const (
	msgSettingsNotFound = "настройки календаря не найдены"
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

// Handle GET /api/v1/settings/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrSettingsNotFound):
			h.logger.Warn("GET /settings/calendar - Settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("GET /settings/calendar - Failed to get settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings/calendar - Settings retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
