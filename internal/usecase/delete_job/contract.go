package delete_job

import "context"

// JobRepository интерфейс репозитория заявок
type JobRepository interface {
	Delete(ctx context.Context, id int64) error
}

// AppointmentRepository интерфейс репозитория записей в расписании
type AppointmentRepository interface {
	// DeleteByJobID удаляет запись заявки; отсутствие записи не ошибка
	DeleteByJobID(ctx context.Context, jobID int64) error
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
