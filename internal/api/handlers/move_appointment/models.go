package move_appointment

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	moveAppointment "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/move_appointment"
)

// MoveAppointmentRequest HTTP request model
type MoveAppointmentRequest struct {
	UserID  int64  `json:"userId"`
	NewDate string `json:"newDate"` // YYYY-MM-DD
}

// MovedAppointmentResponse HTTP response model
type MovedAppointmentResponse struct {
	ID               int64     `json:"id"`
	JobID            int64     `json:"jobId"`
	CustomerID       int64     `json:"customerId"`
	VehicleID        int64     `json:"vehicleId"`
	DateTime         time.Time `json:"dateTime"`
	UpdatedAt        time.Time `json:"updatedAt"`
	CapacityExceeded bool      `json:"capacityExceeded"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*moveAppointment.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	return &moveAppointment.Request{
		UserID:        r.UserID,
		AppointmentID: appointmentID,
		NewDate:       newDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveAppointment.Response) *MovedAppointmentResponse {
	return &MovedAppointmentResponse{
		ID:               resp.ID,
		JobID:            resp.JobID,
		CustomerID:       resp.CustomerID,
		VehicleID:        resp.VehicleID,
		DateTime:         resp.DateTime,
		UpdatedAt:        resp.UpdatedAt,
		CapacityExceeded: resp.CapacityExceeded,
	}
}
