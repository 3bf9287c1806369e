package delete_job

import "errors"

var (
	// ErrJobNotFound возвращается, когда заявка не найдена
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
