package book_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	jobRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
)

// UseCase use case для бронирования слота под заявку
type UseCase struct {
	jobRepo         JobRepository
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	jobRepo JobRepository,
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		jobRepo:         jobRepo,
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования слота
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости боксов и вставка записи должны быть атомарны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: user=%d, job=%d, date=%s, time=%s",
		req.UserID, req.JobID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию календаря мастерской
	config, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("BookSlot: failed to get shop settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop settings: %v", ErrInternal, err)
	}

	loc, err := config.Location()
	if err != nil {
		uc.logger.Error("BookSlot: invalid shop timezone %q: %v", config.Timezone, err)
		return nil, fmt.Errorf("%w: invalid shop timezone: %v", ErrInternal, err)
	}

	// 3. Мастерская должна быть открыта в эту дату
	if !config.IsOpenOn(req.Date) {
		uc.logger.Warn("BookSlot: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrShopClosed
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем заявку с блокировкой (FOR UPDATE)
		job, err := uc.jobRepo.GetByID(txCtx, req.JobID)
		if err != nil {
			if errors.Is(err, jobRepo.ErrJobNotFound) {
				uc.logger.Warn("BookSlot: job id=%d not found", req.JobID)
				return ErrJobNotFound
			}
			uc.logger.Error("BookSlot: failed to get job id=%d: %v", req.JobID, err)
			return fmt.Errorf("%w: failed to get job: %v", ErrInternal, err)
		}

		// 4.2. Статус заявки должен допускать запись, и записи еще быть не должно
		if !job.IsSchedulable() {
			uc.logger.Warn("BookSlot: job id=%d has status %s, scheduling not allowed", req.JobID, job.Status)
			return ErrJobNotSchedulable
		}
		if job.IsScheduled() {
			uc.logger.Warn("BookSlot: job id=%d already has appointment id=%d", req.JobID, *job.AppointmentID)
			return ErrJobAlreadyScheduled
		}

		// 4.3. Длительность берем из текущей оценки заявки, а не из запроса
		durationMinutes := job.DurationMinutes()
		if err := validateDuration(durationMinutes); err != nil {
			uc.logger.Warn("BookSlot: job id=%d has invalid duration %.2fh", req.JobID, job.EstimatedDurationHours)
			return err
		}

		// 4.4. Работы должны целиком помещаться в рабочее окно
		startMin, err := req.StartTime.MinutesOfDay()
		if err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}

		openMin, closeMin, err := config.OperatingWindow()
		if err != nil {
			uc.logger.Error("BookSlot: invalid operating hours: %v", err)
			return fmt.Errorf("%w: invalid operating hours: %v", ErrInternal, err)
		}

		if startMin < openMin || startMin+durationMinutes > closeMin {
			uc.logger.Warn("BookSlot: slot %s+%dm is outside operating window", req.StartTime, durationMinutes)
			return ErrOutsideOperatingHours
		}

		// 4.5. Пересчитываем занятость боксов под блокировкой (FOR UPDATE):
		// доступность могла измениться с момента показа слотов пользователю
		busy, err := uc.countOverlappingAppointments(txCtx, req.Date, loc, startMin, durationMinutes)
		if err != nil {
			return err
		}

		if busy >= config.BayCount {
			uc.logger.Warn("BookSlot: slot not available, %d/%d bays taken", busy, config.BayCount)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("BookSlot: slot available, %d/%d bays taken", busy, config.BayCount)

		// 4.6. Создаем запись: момент начала храним в UTC
		dateTime := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
			startMin/60, startMin%60, 0, 0, loc).UTC()

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			JobID:      req.JobID,
			CustomerID: job.CustomerID,
			VehicleID:  job.VehicleID,
			DateTime:   dateTime,
		})
		if err != nil {
			uc.logger.Error("BookSlot: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 4.7. Связываем заявку с записью
		if err := uc.jobRepo.SetAppointmentID(txCtx, req.JobID, &created.ID); err != nil {
			uc.logger.Error("BookSlot: failed to link job id=%d to appointment id=%d: %v",
				req.JobID, created.ID, err)
			return fmt.Errorf("%w: failed to link job to appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created appointment id=%d for job=%d", result.ID, result.JobID)

	return &Response{
		ID:         result.ID,
		JobID:      result.JobID,
		CustomerID: result.CustomerID,
		VehicleID:  result.VehicleID,
		DateTime:   result.DateTime,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// countOverlappingAppointments подсчитывает записи, пересекающиеся с интервалом
// [startMin, startMin+durationMinutes) в минутах локального дня мастерской
//
// Строгие неравенства: работы, граничащие по времени, делят бокс без конфликта.
// Записи с висячей ссылкой на заявку пропускаются
func (uc *UseCase) countOverlappingAppointments(
	ctx context.Context,
	date time.Time,
	loc *time.Location,
	startMin, durationMinutes int,
) (int, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.ListForDateRange(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		uc.logger.Error("BookSlot: failed to list appointments: %v", err)
		return 0, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	jobIDs := make([]int64, 0, len(appointments))
	for _, apt := range appointments {
		jobIDs = append(jobIDs, apt.JobID)
	}

	jobs, err := uc.jobRepo.GetByIDs(ctx, jobIDs)
	if err != nil {
		uc.logger.Error("BookSlot: failed to get jobs for appointments: %v", err)
		return 0, fmt.Errorf("%w: failed to get jobs: %v", ErrInternal, err)
	}

	endMin := startMin + durationMinutes
	count := 0

	for _, apt := range appointments {
		aptJob, ok := jobs[apt.JobID]
		if !ok {
			uc.logger.Warn("BookSlot: appointment id=%d references missing job id=%d, skipping", apt.ID, apt.JobID)
			continue
		}

		local := apt.DateTime.In(loc)
		aptStart := local.Hour()*60 + local.Minute()
		aptEnd := aptStart + aptJob.DurationMinutes()

		if aptStart < endMin && aptEnd > startMin {
			count++
		}
	}

	return count, nil
}
