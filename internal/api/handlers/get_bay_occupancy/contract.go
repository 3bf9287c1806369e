package get_bay_occupancy

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOccupancyRange(ctx context.Context, req *models.GetOccupancyRangeRequest) ([]*models.DayOccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
