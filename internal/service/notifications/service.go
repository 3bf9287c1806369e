package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	appointmentstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/integrations/crmservice"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications/models"
)

// Service сервис вычисления напоминаний, требующих отправки
// Ничего не хранит и не отправляет: по запросу выбирает кандидатов из текущего
// состояния расписания и обогащает их контактами клиентов из CRM
type Service struct {
	appointmentRepo AppointmentRepository
	jobRepo         JobRepository
	crmClient       CRMServiceClient
	timeProvider    TimeProvider
	logger          Logger

	appointmentLookahead time.Duration
	paymentReminderAge   time.Duration
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(
	appointmentRepo AppointmentRepository,
	jobRepo JobRepository,
	crmClient CRMServiceClient,
	appointmentLookahead time.Duration,
	paymentReminderAge time.Duration,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:      appointmentRepo,
		jobRepo:              jobRepo,
		crmClient:            crmClient,
		timeProvider:         &RealTimeProvider{},
		logger:               logger,
		appointmentLookahead: appointmentLookahead,
		paymentReminderAge:   paymentReminderAge,
	}
}

// GetDueNotifications вычисляет напоминания, требующие отправки прямо сейчас
// Недоступность CRM не блокирует выдачу: напоминания отдаются без контактов
func (s *Service) GetDueNotifications(ctx context.Context) ([]models.NotificationResponse, error) {
	now := s.timeProvider.Now()

	appointments, err := s.appointmentRepo.ListForDateRange(ctx, now, now.Add(s.appointmentLookahead))
	if err != nil {
		s.logger.Error("GetDueNotifications: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	jobs, err := s.jobRepo.ListAwaitingPayment(ctx)
	if err != nil {
		s.logger.Error("GetDueNotifications: failed to list jobs awaiting payment: %v", err)
		return nil, fmt.Errorf("%w: failed to list jobs: %v", ErrInternal, err)
	}

	notifications := SelectAppointmentReminders(appointments, now, s.appointmentLookahead)
	notifications = append(notifications, SelectPaymentReminders(jobs, now, s.paymentReminderAge)...)

	// Контакты запрашиваются по разу на клиента; после первой деградации CRM
	// дальнейшие запросы пропускаются, чтобы не ждать таймаут на каждом напоминании
	contacts := make(map[int64]*models.CustomerContact)
	crmDegraded := false

	result := make([]models.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		contact, seen := contacts[n.CustomerID]
		if !seen && !crmDegraded {
			contact, crmDegraded = s.fetchContact(ctx, n.CustomerID)
			contacts[n.CustomerID] = contact
		}

		result = append(result, models.NotificationResponse{
			Type:       string(n.Type),
			TargetID:   n.TargetID,
			CustomerID: n.CustomerID,
			DueDate:    n.DueDate,
			Contact:    contact,
		})
	}

	s.logger.Info("GetDueNotifications: %d notifications due (%d appointment, %d payment)",
		len(result), countByType(notifications, domain.NotificationAppointmentReminder),
		countByType(notifications, domain.NotificationPaymentReminder))

	return result, nil
}

// fetchContact достает контакты клиента из CRM
// Любая ошибка деградирует до nil: напоминание важнее контактов.
// Второй результат true, когда CRM деградировала и новые запросы бесполезны
func (s *Service) fetchContact(ctx context.Context, customerID int64) (*models.CustomerContact, bool) {
	customer, err := s.crmClient.GetCustomerWithGracefulDegradation(ctx, customerID)
	if err != nil {
		if errors.Is(err, crmservice.ErrServiceDegraded) {
			return nil, true
		}
		if !errors.Is(err, crmservice.ErrCustomerNotFound) {
			s.logger.Error("GetDueNotifications: unexpected CRM error for customer_id=%d: %v", customerID, err)
		}
		return nil, false
	}

	return &models.CustomerContact{
		Name:  customer.Name,
		Phone: customer.Phone,
		Email: customer.Email,
	}, false
}

// MarkNotificationSent проставляет отметку об отправленном напоминании
// Вызывается внешним доставщиком после фактической отправки, чтобы селектор
// не выдавал то же напоминание повторно
func (s *Service) MarkNotificationSent(ctx context.Context, req *models.MarkNotificationSentRequest) error {
	s.logger.Info("MarkNotificationSent: user=%d, type=%s, target=%d", req.UserID, req.Type, req.TargetID)

	if req.TargetID <= 0 {
		return fmt.Errorf("%w: targetID must be positive", ErrInvalidInput)
	}

	var err error
	switch domain.NotificationType(req.Type) {
	case domain.NotificationAppointmentReminder:
		err = s.appointmentRepo.MarkReminderSent(ctx, req.TargetID)
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return fmt.Errorf("%w: appointment %d", ErrTargetNotFound, req.TargetID)
		}
	case domain.NotificationPaymentReminder:
		err = s.jobRepo.MarkPaymentReminderSent(ctx, req.TargetID)
		if errors.Is(err, jobstorage.ErrJobNotFound) {
			return fmt.Errorf("%w: job %d", ErrTargetNotFound, req.TargetID)
		}
	default:
		return fmt.Errorf("%w: unknown notification type %q", ErrInvalidInput, req.Type)
	}

	if err != nil {
		s.logger.Error("MarkNotificationSent: failed to mark %s target_id=%d: %v", req.Type, req.TargetID, err)
		return fmt.Errorf("%w: failed to mark notification sent: %v", ErrInternal, err)
	}

	s.logger.Info("MarkNotificationSent: marked %s target_id=%d", req.Type, req.TargetID)

	return nil
}

func countByType(notifications []domain.Notification, t domain.NotificationType) int {
	count := 0
	for _, n := range notifications {
		if n.Type == t {
			count++
		}
	}
	return count
}
