package domain

import "time"

// Technician a workshop mechanic.
// Availability is consumed for display in the scheduler UI only; it is NOT
// cross-checked against appointment placement or technician assignment.
type Technician struct {
	ID        int64
	Name      string
	Specialty string

	// Availability weekday name -> works that day
	Availability map[string]bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailableOn reports the technician's declared weekly availability for the
// weekday of date (display hint, not a scheduling constraint)
func (t *Technician) IsAvailableOn(date time.Time) bool {
	return t.Availability[date.Weekday().String()]
}
