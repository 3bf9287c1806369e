package models

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// Request модели

// AssignTechnicianRequest запрос на назначение механика на заявку
type AssignTechnicianRequest struct {
	UserID       int64  `json:"userId"`
	JobID        int64  `json:"jobId"`
	TechnicianID *int64 `json:"technicianId"` // NULL = снять назначение
}

// GetDayOccupancyRequest запрос занятости боксов на дату
type GetDayOccupancyRequest struct {
	Date time.Time `json:"date"`
}

// GetOccupancyRangeRequest запрос занятости боксов на интервал дат включительно
type GetOccupancyRangeRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Response модели

// JobResponse заявка после назначения механика
type JobResponse struct {
	ID                     int64      `json:"id"`
	CustomerID             int64      `json:"customerId"`
	VehicleID              int64      `json:"vehicleId"`
	Description            string     `json:"description"`
	EstimatedDurationHours float64    `json:"estimatedDurationHours"`
	Status                 string     `json:"status"`
	AppointmentID          *int64     `json:"appointmentId,omitempty"`
	TechnicianID           *int64     `json:"technicianId,omitempty"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// AppointmentResponse запись в расписании
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"jobId"`
	CustomerID int64     `json:"customerId"`
	VehicleID  int64     `json:"vehicleId"`
	DateTime   time.Time `json:"dateTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OccupancySegment отрезок дня с постоянным числом занятых боксов
type OccupancySegment struct {
	Start    types.TimeString `json:"start"`
	End      types.TimeString `json:"end"`
	BusyBays int              `json:"busyBays"`
}

// DayOccupancyResponse занятость боксов на дату
type DayOccupancyResponse struct {
	Date         time.Time          `json:"date"`
	BayCount     int                `json:"bayCount"`
	MaxOccupancy int                `json:"maxOccupancy"`
	Overbooked   bool               `json:"overbooked"`
	Segments     []OccupancySegment `json:"segments"`
}

// TechnicianResponse механик с недельной доступностью
// Доступность - подсказка для планировщика, она нигде не проверяется при записи
type TechnicianResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Specialty    string          `json:"specialty"`
	Availability map[string]bool `json:"availability"`
}
