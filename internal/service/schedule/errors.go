package schedule

import "errors"

var (
	// ErrJobNotFound возвращается, когда заявка не найдена
	ErrJobNotFound = errors.New("job not found")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrTechnicianNotFound возвращается, когда механик не найден
	ErrTechnicianNotFound = errors.New("technician not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
