package technician

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий механиков (read-only для планировщика)
// availability хранится JSONB колонкой: weekday name -> bool
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория механиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает механика по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialty",
		"availability",
		"created_at",
		"updated_at",
	).
		From("technicians").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tech, err := scanTechnician(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTechnicianNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan technician: %v", ErrScanRow, err)
	}

	return tech, nil
}

// List получает всех механиков с их недельной доступностью
func (r *Repository) List(ctx context.Context) ([]*domain.Technician, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"specialty",
		"availability",
		"created_at",
		"updated_at",
	).
		From("technicians").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	technicians := make([]*domain.Technician, 0)
	for rows.Next() {
		tech, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		technicians = append(technicians, tech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return technicians, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTechnician(s scanner) (*domain.Technician, error) {
	var tech domain.Technician
	var availabilityRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&tech.ID,
		&tech.Name,
		&tech.Specialty,
		&availabilityRaw,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(availabilityRaw) > 0 {
		if err := json.Unmarshal(availabilityRaw, &tech.Availability); err != nil {
			return nil, err
		}
	}

	tech.CreatedAt = createdAt.Time
	tech.UpdatedAt = updatedAt.Time

	return &tech, nil
}
