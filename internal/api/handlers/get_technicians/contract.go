package get_technicians

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTechnicians(ctx context.Context) ([]models.TechnicianResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
