package technician

import "errors"

var (
	// ErrTechnicianNotFound возвращается, когда механик не найден
	ErrTechnicianNotFound = errors.New("technician.repository: technician not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("technician.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("technician.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("technician.repository: failed to scan row")
)
