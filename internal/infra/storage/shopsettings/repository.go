package shopsettings

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

// Repository репозиторий настроек календаря мастерской
// Настройки хранятся одной строкой; open_weekdays - JSONB колонка
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает конфигурацию календаря мастерской
func (r *Repository) Get(ctx context.Context) (*domain.ShopCalendarConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"open_weekdays",
		"open_time",
		"close_time",
		"bay_count",
		"timezone",
	).
		From("shop_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.ShopCalendarConfig
	var openWeekdaysRaw []byte

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&openWeekdaysRaw,
		&cfg.OperatingHours.Start,
		&cfg.OperatingHours.End,
		&cfg.BayCount,
		&cfg.Timezone,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(openWeekdaysRaw, &cfg.OpenWeekdays); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal open_weekdays: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Update перезаписывает конфигурацию календаря мастерской
func (r *Repository) Update(ctx context.Context, cfg *domain.ShopCalendarConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openWeekdaysRaw, err := json.Marshal(cfg.OpenWeekdays)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal open_weekdays: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("shop_settings").
		Set("open_weekdays", openWeekdaysRaw).
		Set("open_time", cfg.OperatingHours.Start).
		Set("close_time", cfg.OperatingHours.End).
		Set("bay_count", cfg.BayCount).
		Set("timezone", cfg.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
