package move_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
)

// UseCase use case для переноса записи на другую дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	jobRepo         JobRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	jobRepo JobRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		jobRepo:         jobRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// Меняется только календарная дата, локальное время начала работ сохраняется.
// Занятость боксов на новой дате НЕ блокирует перенос: диспетчер может сознательно
// перегрузить день, поэтому переполнение лишь отражается флагом CapacityExceeded
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveAppointment: user=%d, appointment=%d, newDate=%s",
		req.UserID, req.AppointmentID, req.NewDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию календаря мастерской
	config, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("MoveAppointment: failed to get shop settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop settings: %v", ErrInternal, err)
	}

	loc, err := config.Location()
	if err != nil {
		uc.logger.Error("MoveAppointment: invalid shop timezone %q: %v", config.Timezone, err)
		return nil, fmt.Errorf("%w: invalid shop timezone: %v", ErrInternal, err)
	}

	var result *domain.Appointment
	var capacityExceeded bool

	// 3. Выполняем операции с БД в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем запись с блокировкой (FOR UPDATE)
		apt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("MoveAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("MoveAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 3.2. Заявка нужна для длительности работ; здесь висячая ссылка фатальна
		job, err := uc.jobRepo.GetByID(txCtx, apt.JobID)
		if err != nil {
			if errors.Is(err, jobRepo.ErrJobNotFound) {
				uc.logger.Error("MoveAppointment: appointment id=%d references missing job id=%d",
					apt.ID, apt.JobID)
				return ErrJobNotFound
			}
			uc.logger.Error("MoveAppointment: failed to get job id=%d: %v", apt.JobID, err)
			return fmt.Errorf("%w: failed to get job: %v", ErrInternal, err)
		}

		// 3.3. Сохраняем локальное время начала, заменяем только дату
		local := apt.DateTime.In(loc)
		newDateTime := time.Date(req.NewDate.Year(), req.NewDate.Month(), req.NewDate.Day(),
			local.Hour(), local.Minute(), 0, 0, loc).UTC()

		updated, err := uc.appointmentRepo.UpdateDateTime(txCtx, apt.ID, newDateTime)
		if err != nil {
			uc.logger.Error("MoveAppointment: failed to update appointment id=%d: %v", apt.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		// 3.4. Пересчитываем занятость боксов на новой дате для флага переполнения
		startMin := local.Hour()*60 + local.Minute()
		busy, err := uc.countOverlappingAppointments(txCtx, req.NewDate, loc, updated.ID, startMin, job.DurationMinutes())
		if err != nil {
			return err
		}

		// busy не включает саму перенесенную запись
		if busy+1 > config.BayCount {
			uc.logger.Warn("MoveAppointment: capacity exceeded on %s, %d/%d bays taken",
				req.NewDate.Format(domain.DateFormat), busy+1, config.BayCount)
			capacityExceeded = true
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("MoveAppointment: appointment id=%d moved to %s, capacityExceeded=%t",
		result.ID, result.DateTime.Format(time.RFC3339), capacityExceeded)

	return &Response{
		ID:               result.ID,
		JobID:            result.JobID,
		CustomerID:       result.CustomerID,
		VehicleID:        result.VehicleID,
		DateTime:         result.DateTime,
		UpdatedAt:        result.UpdatedAt,
		CapacityExceeded: capacityExceeded,
	}, nil
}

// countOverlappingAppointments подсчитывает чужие записи на дату, пересекающиеся
// с интервалом [startMin, startMin+durationMinutes) в минутах локального дня
//
// Запись excludeID пропускается: это сама перенесенная запись.
// Записи с висячей ссылкой на заявку пропускаются
func (uc *UseCase) countOverlappingAppointments(
	ctx context.Context,
	date time.Time,
	loc *time.Location,
	excludeID int64,
	startMin, durationMinutes int,
) (int, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.ListForDateRange(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		uc.logger.Error("MoveAppointment: failed to list appointments: %v", err)
		return 0, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	jobIDs := make([]int64, 0, len(appointments))
	for _, apt := range appointments {
		jobIDs = append(jobIDs, apt.JobID)
	}

	jobs, err := uc.jobRepo.GetByIDs(ctx, jobIDs)
	if err != nil {
		uc.logger.Error("MoveAppointment: failed to get jobs for appointments: %v", err)
		return 0, fmt.Errorf("%w: failed to get jobs: %v", ErrInternal, err)
	}

	endMin := startMin + durationMinutes
	count := 0

	for _, apt := range appointments {
		if apt.ID == excludeID {
			continue
		}

		aptJob, ok := jobs[apt.JobID]
		if !ok {
			uc.logger.Warn("MoveAppointment: appointment id=%d references missing job id=%d, skipping",
				apt.ID, apt.JobID)
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
