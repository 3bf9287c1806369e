package move_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей в расписании
type AppointmentRepository interface {
	// GetByID получает запись по ID (в транзакции - с блокировкой FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// ListForDateRange получает записи, начинающиеся в интервале [start, end)
	ListForDateRange(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	UpdateDateTime(ctx context.Context, id int64, dateTime time.Time) (*domain.Appointment, error)
}

// JobRepository интерфейс репозитория заявок
type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	// GetByIDs получает заявки по списку ID; отсутствующие ID просто не попадают в результат
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Job, error)
}

// SettingsRepository интерфейс репозитория настроек календаря мастерской
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopCalendarConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
