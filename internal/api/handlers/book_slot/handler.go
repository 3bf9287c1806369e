package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgJobNotFound         = "заявка не найдена"
	msgJobNotSchedulable   = "статус заявки не допускает запись"
	msgJobAlreadyScheduled = "у заявки уже есть запись"
	msgShopClosed          = "мастерская закрыта в выбранную дату"
	msgOutsideHours        = "работы не помещаются в рабочее окно"
	msgSlotNotAvailable    = "выбранный временной слот недоступен"
	msgInvalidDuration     = "некорректная оценка длительности работ"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrJobNotFound):
			h.logger.Warn("POST /appointments - Job not found: job_id=%d", req.JobID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, bookSlot.ErrJobNotSchedulable):
			h.logger.Warn("POST /appointments - Job not schedulable: job_id=%d", req.JobID)
			handlers.RespondBadRequest(w, msgJobNotSchedulable)

		case errors.Is(err, bookSlot.ErrJobAlreadyScheduled):
			h.logger.Warn("POST /appointments - Job already scheduled: job_id=%d", req.JobID)
			handlers.RespondError(w, http.StatusConflict, msgJobAlreadyScheduled)

		case errors.Is(err, bookSlot.ErrShopClosed):
			h.logger.Warn("POST /appointments - Shop closed: job_id=%d, date=%s", req.JobID, req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, bookSlot.ErrOutsideOperatingHours):
			h.logger.Warn("POST /appointments - Outside operating hours: job_id=%d, time=%s", req.JobID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, bookSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: job_id=%d, date=%s, time=%s",
				req.JobID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookSlot.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: job_id=%d", req.JobID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: job_id=%d, error=%v", req.JobID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to book slot: job_id=%d, error=%v", req.JobID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, job_id=%d, user_id=%d",
		result.ID, req.JobID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
