package shopsettings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки мастерской не заведены
	ErrSettingsNotFound = errors.New("shopsettings.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shopsettings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shopsettings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shopsettings.repository: failed to scan row")
)
