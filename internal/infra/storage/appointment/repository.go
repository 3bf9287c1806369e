package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"job_id",
	"customer_id",
	"vehicle_id",
	"date_time",
	"reminder_sent_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями в расписании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись в расписании
// Вызывается из сериализуемой транзакции бронирования (см. usecase book_slot):
// вставка записи и обновление jobs.appointment_id должны примениться атомарно
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"job_id",
			"customer_id",
			"vehicle_id",
			"date_time",
		).
		Values(
			apt.JobID,
			apt.CustomerID,
			apt.VehicleID,
			apt.DateTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	apt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// ListForDateRange получает записи, начинающиеся в интервале [start, end)
// Порядок - хронологический по началу занятия бокса
//
// В транзакции бронирования добавляется FOR UPDATE: конкурирующие бронирования
// на тот же день сериализуются на уровне строк
func (r *Repository) ListForDateRange(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"date_time": start}).
		Where(squirrel.Lt{"date_time": end}).
		OrderBy("date_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// UpdateDateTime переносит запись на новый момент начала
func (r *Repository) UpdateDateTime(ctx context.Context, id int64, dateTime time.Time) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("date_time", dateTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnsList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDateTime - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	apt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDateTime - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// MarkReminderSent фиксирует отправку напоминания о записи
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("reminder_sent_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteByJobID удаляет запись, принадлежащую заявке
// Отсутствие записи не считается ошибкой: заявка могла быть не запланирована
func (r *Repository) DeleteByJobID(ctx context.Context, jobID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByJobID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByJobID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func columnsList() string {
	list := appointmentColumns[0]
	for _, c := range appointmentColumns[1:] {
		list += ", " + c
	}
	return list
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(s scanner) (*domain.Appointment, error) {
	var apt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&apt.ID,
		&apt.JobID,
		&apt.CustomerID,
		&apt.VehicleID,
		&apt.DateTime,
		&apt.ReminderSentAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

func collectAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: collectAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: collectAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
