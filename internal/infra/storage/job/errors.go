package job

import "errors"

var (
	// ErrJobNotFound возвращается, когда заявка не найдена
	ErrJobNotFound = errors.New("job.repository: job not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("job.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("job.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("job.repository: failed to scan row")
)
