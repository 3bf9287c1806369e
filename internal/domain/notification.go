package domain

import "time"

// NotificationType kind of reminder a customer should receive
type NotificationType string

const (
	NotificationAppointmentReminder NotificationType = "APPOINTMENT_REMINDER"
	NotificationPaymentReminder     NotificationType = "PAYMENT_REMINDER"
)

// Notification a computed reminder candidate.
// Never stored — recomputed from the current appointment/job snapshots on demand;
// message rendering and delivery are external collaborators.
type Notification struct {
	Type       NotificationType
	TargetID   int64 // appointment ID or job ID, depending on Type
	CustomerID int64
	DueDate    time.Time
}
