package get_bay_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule"
)

const (
	msgMissingDates      = "startDate и endDate обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParameters = "некорректные параметры запроса"
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

// Handle GET /api/v1/schedule/occupancy
// Query params: startDate (required, YYYY-MM-DD), endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if startDate == "" || endDate == "" {
		h.logger.Warn("GET /schedule/occupancy - Missing date range: startDate=%q, endDate=%q", startDate, endDate)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	serviceReq, err := ToServiceRequest(startDate, endDate)
	if err != nil {
		h.logger.Warn("GET /schedule/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	days, err := h.service.GetOccupancyRange(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /schedule/occupancy - Invalid input: startDate=%s, endDate=%s, error=%v",
				startDate, endDate, err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		default:
			h.logger.Error("GET /schedule/occupancy - Failed to get occupancy: startDate=%s, endDate=%s, error=%v",
				startDate, endDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/occupancy - Occupancy retrieved successfully: startDate=%s, endDate=%s, days=%d",
		startDate, endDate, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(startDate, endDate, days))
}
