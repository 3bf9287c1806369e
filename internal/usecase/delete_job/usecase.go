package delete_job

import (
	"context"
	"errors"
	"fmt"

	jobRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
)

// UseCase use case для удаления заявки вместе с ее записью в расписании
type UseCase struct {
	jobRepo         JobRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	jobRepo JobRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		jobRepo:         jobRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case удаления заявки
// Запись в расписании и заявка удаляются в одной транзакции: после удаления
// не должно оставаться висячих записей, занимающих бокс
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("DeleteJob: user=%d, job=%d", req.UserID, req.JobID)

	if req.JobID <= 0 {
		uc.logger.Warn("DeleteJob: validation failed: jobID must be positive")
		return fmt.Errorf("%w: jobID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Сначала освобождаем бокс: запись могла и не существовать
		if err := uc.appointmentRepo.DeleteByJobID(txCtx, req.JobID); err != nil {
			uc.logger.Error("DeleteJob: failed to delete appointment for job id=%d: %v", req.JobID, err)
			return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
		}

		if err := uc.jobRepo.Delete(txCtx, req.JobID); err != nil {
			if errors.Is(err, jobRepo.ErrJobNotFound) {
				uc.logger.Warn("DeleteJob: job id=%d not found", req.JobID)
				return ErrJobNotFound
			}
			uc.logger.Error("DeleteJob: failed to delete job id=%d: %v", req.JobID, err)
			return fmt.Errorf("%w: failed to delete job: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("DeleteJob: successfully deleted job id=%d", req.JobID)
	return nil
}
