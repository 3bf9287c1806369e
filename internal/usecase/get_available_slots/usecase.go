package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	jobRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
)

// UseCase use case для получения доступных слотов для записи заявки
type UseCase struct {
	jobRepo         JobRepository
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	jobRepo JobRepository,
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		jobRepo:         jobRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, job=%d, date=%s",
		req.UserID, req.JobID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию календаря мастерской
	config, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get shop settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop settings: %v", ErrInternal, err)
	}

	// 3. Получаем заявку и проверяем оценку длительности
	job, err := uc.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			uc.logger.Warn("GetAvailableSlots: job id=%d not found", req.JobID)
			return nil, ErrJobNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get job id=%d: %v", req.JobID, err)
		return nil, fmt.Errorf("%w: failed to get job: %v", ErrInternal, err)
	}

	durationMinutes := job.DurationMinutes()
	if err := validateDuration(durationMinutes); err != nil {
		uc.logger.Warn("GetAvailableSlots: job id=%d has invalid duration %.2fh", req.JobID, job.EstimatedDurationHours)
		return nil, err
	}

	// 4. Если мастерская закрыта в эту дату - слотов нет
	loc, err := config.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid shop timezone %q: %v", config.Timezone, err)
		return nil, fmt.Errorf("%w: invalid shop timezone: %v", ErrInternal, err)
	}

	if !config.IsOpenOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:       req.Date,
			JobID:      req.JobID,
			ShopClosed: true,
			Slots:      []Slot{},
		}, nil
	}

	// 5. Собираем занятые интервалы дня: записи + длительности их заявок
	occupied, err := uc.collectOccupiedIntervals(ctx, req, loc)
	if err != nil {
		return nil, err
	}

	// 6. Генерируем кандидатов с шагом 15 минут и считаем занятость боксов
	slots, err := generateAvailableSlots(config, durationMinutes, occupied)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for job=%d, date=%s",
		len(slots), req.JobID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		JobID: req.JobID,
		Slots: slots,
	}, nil
}

// collectOccupiedIntervals возвращает занятые интервалы на дату запроса
// в минутах локального дня мастерской
//
// Записи, чья заявка удалена или не находится, пропускаются: висячая ссылка
// не должна блокировать расчет доступности
func (uc *UseCase) collectOccupiedIntervals(ctx context.Context, req *Request, loc *time.Location) ([]occupiedInterval, error) {
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.ListForDateRange(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	jobIDs := make([]int64, 0, len(appointments))
	for _, apt := range appointments {
		jobIDs = append(jobIDs, apt.JobID)
	}

	jobs, err := uc.jobRepo.GetByIDs(ctx, jobIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get jobs for appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get jobs: %v", ErrInternal, err)
	}

	occupied := make([]occupiedInterval, 0, len(appointments))
	for _, apt := range appointments {
		aptJob, ok := jobs[apt.JobID]
		if !ok {
			uc.logger.Warn("GetAvailableSlots: appointment id=%d references missing job id=%d, skipping",
				apt.ID, apt.JobID)
			continue
		}

		local := apt.DateTime.In(loc)
		startMin := local.Hour()*60 + local.Minute()
		occupied = append(occupied, occupiedInterval{
			startMin: startMin,
			endMin:   startMin + aptJob.DurationMinutes(),
		})
	}

	return occupied, nil
}
