package assign_technician

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule"
)

const (
	msgInvalidJobID       = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgJobNotFound        = "заявка не найдена"
	msgTechnicianNotFound = "механик не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/jobs/{jobId}/technician
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	jobID, err := strconv.ParseInt(vars["jobId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /jobs/{id}/technician - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	var req AssignTechnicianRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /jobs/{id}/technician - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignTechnician(r.Context(), req.ToServiceRequest(jobID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrJobNotFound):
			h.logger.Warn("PUT /jobs/{id}/technician - Job not found: job_id=%d", jobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, scheduleService.ErrTechnicianNotFound):
			h.logger.Warn("PUT /jobs/{id}/technician - Technician not found: job_id=%d, technician_id=%v",
				jobID, req.TechnicianID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /jobs/{id}/technician - Invalid input: job_id=%d, error=%v", jobID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /jobs/{id}/technician - Failed to assign technician: job_id=%d, error=%v", jobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /jobs/{id}/technician - Technician assigned successfully: job_id=%d, technician_id=%v",
		jobID, result.TechnicianID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
