package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
)

// JobRepository интерфейс репозитория заявок
type JobRepository interface {
	// GetByID получает заявку по ID
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	// GetByIDs получает заявки по списку ID; отсутствующие ID просто не попадают в результат
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Job, error)
}

// AppointmentRepository интерфейс репозитория записей в расписании
type AppointmentRepository interface {
	// ListForDateRange получает записи, начинающиеся в интервале [start, end)
	ListForDateRange(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек календаря мастерской
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopCalendarConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
