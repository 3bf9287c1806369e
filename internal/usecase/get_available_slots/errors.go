package get_available_slots

import "errors"

var (
	// ErrJobNotFound возвращается, когда заявка не найдена
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidDuration возвращается при некорректной оценке длительности работ
	ErrInvalidDuration = errors.New("invalid job duration")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid slot date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
