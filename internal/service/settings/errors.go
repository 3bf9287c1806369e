package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки мастерской не заведены
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidInput возвращается при некорректной конфигурации календаря
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
