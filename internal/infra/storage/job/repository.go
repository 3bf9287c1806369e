package job

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/psqlbuilder"
)

var jobColumns = []string{
	"id",
	"customer_id",
	"vehicle_id",
	"description",
	"estimated_duration_hours",
	"status",
	"appointment_id",
	"technician_id",
	"completed_at",
	"payment_reminder_sent_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками (quotes)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает заявку по ID
// Если в контексте есть активная транзакция - запрос выполняется в ней
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку: бронирование обновляет appointment_id
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	j, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan job: %v", ErrScanRow, err)
	}

	return j, nil
}

// GetByIDs получает заявки по списку ID
// Возвращает map id -> заявка; отсутствующие ID просто не попадают в результат
// (чтение расписания не должно падать из-за повисшей ссылки)
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Job, error) {
	result := make(map[int64]*domain.Job, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		result[j.ID] = j
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListAwaitingPayment получает завершённые, но не оплаченные заявки,
// которым ещё не отправлялось напоминание об оплате
func (r *Repository) ListAwaitingPayment(ctx context.Context) ([]*domain.Job, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"status": domain.StatusCompleted}).
		Where(squirrel.Eq{"payment_reminder_sent_at": nil}).
		OrderBy("completed_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAwaitingPayment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAwaitingPayment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// SetAppointmentID обновляет обратную ссылку заявки на запись в расписании
// nil снимает ссылку (заявка снова без записи)
func (r *Repository) SetAppointmentID(ctx context.Context, jobID int64, appointmentID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("appointment_id", appointmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAppointmentID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAppointmentID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAppointmentID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// SetTechnician назначает (или снимает, при nil) механика на заявку
func (r *Repository) SetTechnician(ctx context.Context, jobID int64, technicianID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("technician_id", technicianID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetTechnician - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetTechnician - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetTechnician - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// MarkPaymentReminderSent фиксирует отправку напоминания об оплате
func (r *Repository) MarkPaymentReminderSent(ctx context.Context, jobID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jobs").
		Set("payment_reminder_sent_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaymentReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaymentReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaymentReminderSent - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// Delete удаляет заявку (запись в расписании удаляется отдельно, в той же транзакции)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(s scanner) (*domain.Job, error) {
	var j domain.Job
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&j.ID,
		&j.CustomerID,
		&j.VehicleID,
		&j.Description,
		&j.EstimatedDurationHours,
		&j.Status,
		&j.AppointmentID,
		&j.TechnicianID,
		&j.CompletedAt,
		&j.PaymentReminderSentAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	j.CreatedAt = createdAt.Time
	j.UpdatedAt = updatedAt.Time

	return &j, nil
}

func collectJobs(rows *sql.Rows) ([]*domain.Job, error) {
	jobs := make([]*domain.Job, 0)

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: collectJobs - scan row: %v", ErrScanRow, err)
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: collectJobs - rows error: %v", ErrScanRow, err)
	}

	return jobs, nil
}
