package get_due_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications/models"
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

// GetDueNotificationsResponse список напоминаний, требующих отправки
type GetDueNotificationsResponse struct {
	Notifications []models.NotificationResponse `json:"notifications"`
}

// Handle GET /api/v1/notifications/due
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.GetDueNotifications(r.Context())
	if err != nil {
		h.logger.Error("GET /notifications/due - Failed to get due notifications: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications/due - Notifications retrieved successfully: count=%d", len(notifications))
	handlers.RespondJSON(w, http.StatusOK, GetDueNotificationsResponse{Notifications: notifications})
}
