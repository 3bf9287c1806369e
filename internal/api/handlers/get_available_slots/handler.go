package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/get_available_slots"
)

const (
	msgMissingJobID      = "ID заявки обязателен"
	msgInvalidJobID      = "некорректный ID заявки"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgJobNotFound       = "заявка не найдена"
	msgInvalidDuration   = "некорректная оценка длительности работ"
	msgInvalidParameters = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots
// Query params: jobId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	jobIDStr := r.URL.Query().Get("jobId")
	if jobIDStr == "" {
		h.logger.Warn("GET /schedule/slots - Missing job ID")
		handlers.RespondBadRequest(w, msgMissingJobID)
		return
	}

	jobID, err := strconv.ParseInt(jobIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid job ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidJobID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(middleware.UserID(r), jobID, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrJobNotFound):
			h.logger.Warn("GET /schedule/slots - Job not found: job_id=%d", jobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /schedule/slots - Invalid duration: job_id=%d", jobID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/slots - Invalid input: job_id=%d, error=%v", jobID, err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		default:
			h.logger.Error("GET /schedule/slots - Failed to get slots: job_id=%d, date=%s, error=%v",
				jobID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule/slots - Slots retrieved successfully: job_id=%d, date=%s, shop_closed=%t, slots_count=%d",
		jobID, dateStr, result.ShopClosed, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
