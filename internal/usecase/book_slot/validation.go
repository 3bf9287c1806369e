package book_slot

import (
	"fmt"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.JobID <= 0 {
		return fmt.Errorf("%w: jobID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDuration проверяет оценку длительности работ
func validateDuration(durationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidDuration)
	}

	maxMinutes := int(domain.MaxJobDurationHours * 60)
	if durationMinutes > maxMinutes {
		return fmt.Errorf("%w: duration exceeds %d hours", ErrInvalidDuration, int(domain.MaxJobDurationHours))
	}

	return nil
}
