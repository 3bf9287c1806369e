package delete_job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/middleware"
	deleteJob "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/delete_job"
)

const (
	msgInvalidJobID = "некорректный ID заявки"
	msgJobNotFound  = "заявка не найдена"
)

type Handler struct {
	useCase DeleteJobUseCase
	logger  Logger
}

func NewHandler(useCase DeleteJobUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/jobs/{jobId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	jobID, err := strconv.ParseInt(vars["jobId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /jobs/{id} - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	err = h.useCase.Execute(r.Context(), &deleteJob.Request{
		UserID: middleware.UserID(r),
		JobID:  jobID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteJob.ErrJobNotFound):
			h.logger.Warn("DELETE /jobs/{id} - Job not found: job_id=%d", jobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, deleteJob.ErrInvalidInput):
			h.logger.Warn("DELETE /jobs/{id} - Invalid input: job_id=%d, error=%v", jobID, err)
			handlers.RespondBadRequest(w, msgInvalidJobID)

		default:
			h.logger.Error("DELETE /jobs/{id} - Failed to delete job: job_id=%d, error=%v", jobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /jobs/{id} - Job deleted successfully: job_id=%d", jobID)
	w.WriteHeader(http.StatusNoContent)
}
