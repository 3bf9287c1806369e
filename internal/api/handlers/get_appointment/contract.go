package get_appointment

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	GetAppointment(ctx context.Context, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
