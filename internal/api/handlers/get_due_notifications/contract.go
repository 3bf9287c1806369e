package get_due_notifications

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications/models"
)

type NotificationsService interface {
	GetDueNotifications(ctx context.Context) ([]models.NotificationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
