package mark_notification_sent

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications/models"
)

type NotificationsService interface {
	MarkNotificationSent(ctx context.Context, req *models.MarkNotificationSentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
