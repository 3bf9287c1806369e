package get_technicians

import (
	"net/http"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
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

// GetTechniciansResponse список механиков мастерской
type GetTechniciansResponse struct {
	Technicians []models.TechnicianResponse `json:"technicians"`
}

// Handle GET /api/v1/technicians
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	technicians, err := h.service.ListTechnicians(r.Context())
	if err != nil {
		h.logger.Error("GET /technicians - Failed to list technicians: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /technicians - Technicians retrieved successfully: count=%d", len(technicians))
	handlers.RespondJSON(w, http.StatusOK, GetTechniciansResponse{Technicians: technicians})
}
