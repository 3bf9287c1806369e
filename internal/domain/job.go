package domain

import (
	"math"
	"time"
)

// JobStatus represents the workflow status of a repair job (quote)
type JobStatus string

const (
	StatusSaved          JobStatus = "saved"
	StatusApproved       JobStatus = "approved"
	StatusWorkInProgress JobStatus = "work_in_progress"
	StatusAwaitingParts  JobStatus = "awaiting_parts"
	StatusCompleted      JobStatus = "completed"
	StatusPaid           JobStatus = "paid"
)

// Job represents a repair job in the workshop.
// A job starts its life as a saved quote and becomes schedulable once approved.
type Job struct {
	ID                     int64
	CustomerID             int64
	VehicleID              int64
	Description            string
	EstimatedDurationHours float64
	Status                 JobStatus

	// AppointmentID back-reference to the committed booking; nil while unscheduled.
	// A job has at most one active appointment at a time.
	AppointmentID *int64

	// TechnicianID assigned technician; a separate, unconstrained resource —
	// assignment never affects bay capacity.
	TechnicianID *int64

	CompletedAt           *time.Time
	PaymentReminderSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSchedulable returns true if the job may receive (or keep) an appointment
func (j *Job) IsSchedulable() bool {
	return j.Status == StatusApproved ||
		j.Status == StatusWorkInProgress ||
		j.Status == StatusAwaitingParts
}

// IsScheduled returns true if the job already has a committed appointment
func (j *Job) IsScheduled() bool {
	return j.AppointmentID != nil
}

// IsAwaitingPayment returns true if the job is completed but not yet paid
func (j *Job) IsAwaitingPayment() bool {
	return j.Status == StatusCompleted
}

// DurationMinutes converts the estimated duration to whole minutes.
// Rounded, not truncated: 4.1h is exactly 246 minutes, but its binary float
// product is fractionally below and would truncate to 245
func (j *Job) DurationMinutes() int {
	return int(math.Round(j.EstimatedDurationHours * 60))
}

// ValidJobStatuses all recognised workflow statuses, in workflow order
var ValidJobStatuses = []JobStatus{
	StatusSaved,
	StatusApproved,
	StatusWorkInProgress,
	StatusAwaitingParts,
	StatusCompleted,
	StatusPaid,
}

// IsValidJobStatus reports whether s is a recognised workflow status
func IsValidJobStatus(s JobStatus) bool {
	for _, v := range ValidJobStatuses {
		if v == s {
			return true
		}
	}
	return false
}
