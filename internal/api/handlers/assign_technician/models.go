package assign_technician

import "github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"

// AssignTechnicianRequest HTTP request model
// TechnicianID = null снимает назначение
type AssignTechnicianRequest struct {
	UserID       int64  `json:"userId"`
	TechnicianID *int64 `json:"technicianId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AssignTechnicianRequest) ToServiceRequest(jobID int64) *models.AssignTechnicianRequest {
	return &models.AssignTechnicianRequest{
		UserID:       r.UserID,
		JobID:        jobID,
		TechnicianID: r.TechnicianID,
	}
}
