package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/shopsettings"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/settings/models"
)

// Service сервис настроек календаря мастерской
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает текущую конфигурацию календаря
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetSettings: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return toResponse(cfg), nil
}

// Update заменяет конфигурацию календаря после валидации
// Уже существующие записи не пересчитываются: сужение рабочего окна или
// уменьшение числа боксов может оставить день перегруженным, это видно
// в занятости как overbooked
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: user=%d, weekdays=%v, window=%s-%s, bays=%d, tz=%s",
		req.UserID, req.OpenWeekdays, req.OpenTime, req.CloseTime, req.BayCount, req.Timezone)

	cfg := &domain.ShopCalendarConfig{
		OpenWeekdays: req.OpenWeekdays,
		OperatingHours: domain.OperatingHours{
			Start: req.OpenTime,
			End:   req.CloseTime,
		},
		BayCount: req.BayCount,
		Timezone: req.Timezone,
	}

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("UpdateSettings: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Update(ctx, cfg); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("UpdateSettings: settings not found")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("UpdateSettings: failed to update settings: %v", err)
		return nil, fmt.Errorf("%w: failed to update settings: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: settings updated")

	return toResponse(cfg), nil
}

func toResponse(cfg *domain.ShopCalendarConfig) *models.SettingsResponse {
	return &models.SettingsResponse{
		OpenWeekdays: cfg.OpenWeekdays,
		OpenTime:     cfg.OperatingHours.Start,
		CloseTime:    cfg.OperatingHours.End,
		BayCount:     cfg.BayCount,
		Timezone:     cfg.Timezone,
	}
}
