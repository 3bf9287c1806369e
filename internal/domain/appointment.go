package domain

import "time"

// Appointment represents a committed booking of a job into the workshop calendar.
// The job owns the scheduling intent; the appointment is the booking itself.
// An appointment never exists without an owning job and is deleted with it.
type Appointment struct {
	ID         int64
	JobID      int64
	CustomerID int64
	VehicleID  int64

	// DateTime start of bay occupancy, stored in UTC.
	// The end is always derived from the owning job's current estimated duration.
	DateTime time.Time

	// ReminderSentAt marker set by the notification delivery pipeline;
	// nil means no appointment reminder has gone out yet.
	ReminderSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime derives the end of bay occupancy from the owning job's duration
func (a *Appointment) EndTime(job *Job) time.Time {
	return a.DateTime.Add(time.Duration(job.DurationMinutes()) * time.Minute)
}

// OnDate reports whether the appointment starts on the given calendar day
// in the supplied location (shop-local time)
func (a *Appointment) OnDate(date time.Time, loc *time.Location) bool {
	local := a.DateTime.In(loc)
	y1, m1, d1 := local.Date()
	y2, m2, d2 := date.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
