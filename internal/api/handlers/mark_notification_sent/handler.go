package mark_notification_sent

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	notificationsService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgTargetNotFound     = "цель напоминания не найдена"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/sent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.MarkNotificationSentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/sent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.MarkNotificationSent(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrTargetNotFound):
			h.logger.Warn("POST /notifications/sent - Target not found: type=%s, target_id=%d",
				req.Type, req.TargetID)
			handlers.RespondNotFound(w, msgTargetNotFound)

		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("POST /notifications/sent - Invalid input: type=%s, target_id=%d, error=%v",
				req.Type, req.TargetID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /notifications/sent - Failed to mark notification sent: type=%s, target_id=%d, error=%v",
				req.Type, req.TargetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/sent - Notification marked as sent: type=%s, target_id=%d",
		req.Type, req.TargetID)
	w.WriteHeader(http.StatusNoContent)
}
