package notifications

import "errors"

var (
	// ErrTargetNotFound возвращается, когда запись или заявка напоминания не найдена
	ErrTargetNotFound = errors.New("service: notification target not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
