package settings

import (
	"context"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек календаря мастерской
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopCalendarConfig, error)
	Update(ctx context.Context, cfg *domain.ShopCalendarConfig) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
