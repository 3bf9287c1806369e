package assign_technician

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	AssignTechnician(ctx context.Context, req *models.AssignTechnicianRequest) (*models.JobResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
