package notifications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/ptr"
)

var now = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

func TestSelectAppointmentReminders(t *testing.T) {
	lookahead := 48 * time.Hour

	appointments := []*domain.Appointment{
		// В окне, напоминание не отправлялось
		{ID: 1, CustomerID: 100, DateTime: now.Add(6 * time.Hour)},
		// В окне, но напоминание уже ушло
		{ID: 2, CustomerID: 101, DateTime: now.Add(6 * time.Hour), ReminderSentAt: ptr.Ptr(now.Add(-time.Hour))},
		// За пределами окна
		{ID: 3, CustomerID: 102, DateTime: now.Add(72 * time.Hour)},
		// Уже началась
		{ID: 4, CustomerID: 103, DateTime: now.Add(-time.Hour)},
		// Ровно на границе окна - не попадает ([now, now+48h))
		{ID: 5, CustomerID: 104, DateTime: now.Add(lookahead)},
	}

	result := SelectAppointmentReminders(appointments, now, lookahead)

	require.Len(t, result, 1)
	assert.Equal(t, domain.NotificationAppointmentReminder, result[0].Type)
	assert.Equal(t, int64(1), result[0].TargetID)
	assert.Equal(t, int64(100), result[0].CustomerID)
	assert.Equal(t, now.Add(6*time.Hour), result[0].DueDate)
}

func TestSelectPaymentReminders(t *testing.T) {
	maxAge := 7 * 24 * time.Hour

	jobs := []*domain.Job{
		// Завершена 10 дней назад, не оплачена, напоминания не было
		{ID: 1, CustomerID: 100, Status: domain.StatusCompleted,
			CompletedAt: ptr.Ptr(now.Add(-10 * 24 * time.Hour))},
		// Завершена недавно
		{ID: 2, CustomerID: 101, Status: domain.StatusCompleted,
			CompletedAt: ptr.Ptr(now.Add(-2 * 24 * time.Hour))},
		// Напоминание уже отправлено
		{ID: 3, CustomerID: 102, Status: domain.StatusCompleted,
			CompletedAt:           ptr.Ptr(now.Add(-10 * 24 * time.Hour)),
			PaymentReminderSentAt: ptr.Ptr(now.Add(-24 * time.Hour))},
		// Оплачена
		{ID: 4, CustomerID: 103, Status: domain.StatusPaid,
			CompletedAt: ptr.Ptr(now.Add(-10 * 24 * time.Hour))},
		// Завершена, но момент завершения не зафиксирован
		{ID: 5, CustomerID: 104, Status: domain.StatusCompleted},
	}

	result := SelectPaymentReminders(jobs, now, maxAge)

	require.Len(t, result, 1)
	assert.Equal(t, domain.NotificationPaymentReminder, result[0].Type)
	assert.Equal(t, int64(1), result[0].TargetID)
	assert.Equal(t, now.Add(-10*24*time.Hour).Add(maxAge), result[0].DueDate)
}

func TestSelectPaymentReminders_ExactBoundaryIsDue(t *testing.T) {
	maxAge := 7 * 24 * time.Hour

	jobs := []*domain.Job{
		{ID: 1, CustomerID: 100, Status: domain.StatusCompleted,
			CompletedAt: ptr.Ptr(now.Add(-maxAge))},
	}

	result := SelectPaymentReminders(jobs, now, maxAge)
	assert.Len(t, result, 1)
}
