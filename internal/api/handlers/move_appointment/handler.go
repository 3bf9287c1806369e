package move_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	moveAppointment "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/move_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgAppointmentNotFound  = "запись не найдена"
	msgJobNotFound          = "заявка записи не найдена"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase MoveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase MoveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/date - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req MoveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/date - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, moveAppointment.ErrJobNotFound):
			h.logger.Warn("PUT /appointments/{id}/date - Job not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgJobNotFound)

		case errors.Is(err, moveAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/date - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /appointments/{id}/date - Failed to move appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/{id}/date - Appointment moved successfully: appointment_id=%d, new_date=%s, capacity_exceeded=%t",
		appointmentID, req.NewDate, result.CapacityExceeded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
