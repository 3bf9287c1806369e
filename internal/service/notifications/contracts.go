package notifications

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/integrations/crmservice"
)

// AppointmentRepository интерфейс репозитория записей в расписании
type AppointmentRepository interface {
	// ListForDateRange получает записи, начинающиеся в интервале [start, end)
	ListForDateRange(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
	// MarkReminderSent проставляет отметку об отправленном напоминании о записи
	MarkReminderSent(ctx context.Context, id int64) error
}

// JobRepository интерфейс репозитория заявок
type JobRepository interface {
	// ListAwaitingPayment получает завершенные заявки без отметки об оплате и напоминании
	ListAwaitingPayment(ctx context.Context) ([]*domain.Job, error)
	// MarkPaymentReminderSent проставляет отметку об отправленном напоминании об оплате
	MarkPaymentReminderSent(ctx context.Context, jobID int64) error
}

// CRMServiceClient интерфейс клиента CRM для контактных данных клиентов
type CRMServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*crmservice.Customer, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
