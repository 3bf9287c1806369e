package book_slot

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	bookSlot "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/book_slot"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	UserID    int64  `json:"userId"`
	JobID     int64  `json:"jobId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"jobId"`
	CustomerID int64     `json:"customerId"`
	VehicleID  int64     `json:"vehicleId"`
	DateTime   time.Time `json:"dateTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest() (*bookSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookSlot.Request{
		UserID:    r.UserID,
		JobID:     r.JobID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		JobID:      resp.JobID,
		CustomerID: resp.CustomerID,
		VehicleID:  resp.VehicleID,
		DateTime:   resp.DateTime,
		CreatedAt:  resp.CreatedAt,
		UpdatedAt:  resp.UpdatedAt,
	}
}
