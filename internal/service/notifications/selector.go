package notifications

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
)

// SelectAppointmentReminders выбирает записи, которым пора отправить напоминание:
// работы начинаются в окне [now, now+lookahead), напоминание еще не отправлялось
//
// Чистая функция без побочных эффектов; отправка и отметка - дело внешних систем
func SelectAppointmentReminders(appointments []*domain.Appointment, now time.Time, lookahead time.Duration) []domain.Notification {
	deadline := now.Add(lookahead)

	result := make([]domain.Notification, 0)
	for _, apt := range appointments {
		if apt.ReminderSentAt != nil {
			continue
		}
		if apt.DateTime.Before(now) || !apt.DateTime.Before(deadline) {
			continue
		}

		result = append(result, domain.Notification{
			Type:       domain.NotificationAppointmentReminder,
			TargetID:   apt.ID,
			CustomerID: apt.CustomerID,
			DueDate:    apt.DateTime,
		})
	}

	return result
}

// SelectPaymentReminders выбирает завершенные заявки, ожидающие оплаты дольше
// допустимого: работы закрыты минимум maxAge назад, напоминание не отправлялось
func SelectPaymentReminders(jobs []*domain.Job, now time.Time, maxAge time.Duration) []domain.Notification {
	result := make([]domain.Notification, 0)
	for _, job := range jobs {
		if !job.IsAwaitingPayment() || job.CompletedAt == nil || job.PaymentReminderSentAt != nil {
			continue
		}
		if now.Sub(*job.CompletedAt) < maxAge {
			continue
		}

		result = append(result, domain.Notification{
			Type:       domain.NotificationPaymentReminder,
			TargetID:   job.ID,
			CustomerID: job.CustomerID,
			DueDate:    job.CompletedAt.Add(maxAge),
		})
	}

	return result
}
