package delete_job

import (
	"context"

	deleteJob "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/delete_job"
)

type DeleteJobUseCase interface {
	Execute(ctx context.Context, req *deleteJob.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
