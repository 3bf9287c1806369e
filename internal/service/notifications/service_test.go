package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	appointmentstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/integrations/crmservice"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/notifications/models"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/ptr"
)

type mockAppointmentRepo struct {
	appointments   []*domain.Appointment
	reminderMarked []int64
}

func (m *mockAppointmentRepo) ListForDateRange(_ context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, apt := range m.appointments {
		if !apt.DateTime.Before(start) && apt.DateTime.Before(end) {
			result = append(result, apt)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) MarkReminderSent(_ context.Context, id int64) error {
	for _, apt := range m.appointments {
		if apt.ID == id {
			m.reminderMarked = append(m.reminderMarked, id)
			return nil
		}
	}
	return appointmentstorage.ErrAppointmentNotFound
}

type mockJobRepo struct {
	jobs           []*domain.Job
	reminderMarked []int64
}

func (m *mockJobRepo) ListAwaitingPayment(_ context.Context) ([]*domain.Job, error) {
	return m.jobs, nil
}

func (m *mockJobRepo) MarkPaymentReminderSent(_ context.Context, jobID int64) error {
	for _, j := range m.jobs {
		if j.ID == jobID {
			m.reminderMarked = append(m.reminderMarked, jobID)
			return nil
		}
	}
	return jobstorage.ErrJobNotFound
}

type mockCRMClient struct {
	customers map[int64]*crmservice.Customer
	degraded  bool
	calls     int
}

func (m *mockCRMClient) GetCustomerWithGracefulDegradation(_ context.Context, customerID int64) (*crmservice.Customer, error) {
	m.calls++
	if m.degraded {
		return nil, crmservice.ErrServiceDegraded
	}
	customer, ok := m.customers[customerID]
	if !ok {
		return nil, crmservice.ErrCustomerNotFound
	}
	return customer, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(appointments []*domain.Appointment, jobs []*domain.Job, crm *mockCRMClient) *Service {
	svc := NewService(
		&mockAppointmentRepo{appointments: appointments},
		&mockJobRepo{jobs: jobs},
		crm,
		48*time.Hour,
		7*24*time.Hour,
		noopLogger{},
	)
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc
}

func TestGetDueNotifications_EnrichesContacts(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, CustomerID: 100, DateTime: now.Add(6 * time.Hour)},
	}
	jobs := []*domain.Job{
		{ID: 2, CustomerID: 101, Status: domain.StatusCompleted,
			CompletedAt: ptr.Ptr(now.Add(-10 * 24 * time.Hour))},
	}
	crm := &mockCRMClient{customers: map[int64]*crmservice.Customer{
		100: {ID: 100, Name: "Ivan", Phone: "+7-900-000-00-00", Email: "ivan@example.com"},
	}}

	svc := newTestService(appointments, jobs, crm)

	result, err := svc.GetDueNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, string(domain.NotificationAppointmentReminder), result[0].Type)
	require.NotNil(t, result[0].Contact)
	assert.Equal(t, "Ivan", result[0].Contact.Name)

	// Клиента 101 нет в CRM: напоминание отдается без контактов
	assert.Equal(t, string(domain.NotificationPaymentReminder), result[1].Type)
	assert.Nil(t, result[1].Contact)
}

func TestGetDueNotifications_CRMDownStillEmits(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, CustomerID: 100, DateTime: now.Add(6 * time.Hour)},
	}

	svc := newTestService(appointments, nil, &mockCRMClient{degraded: true})

	result, err := svc.GetDueNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Contact)
}

func TestGetDueNotifications_CRMDownSingleLookup(t *testing.T) {
	// Три напоминания разным клиентам: после первой деградации CRM
	// остальные контакты не запрашиваются
	appointments := []*domain.Appointment{
		{ID: 1, CustomerID: 100, DateTime: now.Add(6 * time.Hour)},
		{ID: 2, CustomerID: 101, DateTime: now.Add(7 * time.Hour)},
		{ID: 3, CustomerID: 102, DateTime: now.Add(8 * time.Hour)},
	}
	crm := &mockCRMClient{degraded: true}

	svc := newTestService(appointments, nil, crm)

	result, err := svc.GetDueNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)
	for _, n := range result {
		assert.Nil(t, n.Contact)
	}
	assert.Equal(t, 1, crm.calls)
}

func TestGetDueNotifications_ContactLookupPerCustomer(t *testing.T) {
	// Две записи одного клиента: контакты запрашиваются один раз
	appointments := []*domain.Appointment{
		{ID: 1, CustomerID: 100, DateTime: now.Add(6 * time.Hour)},
		{ID: 2, CustomerID: 100, DateTime: now.Add(7 * time.Hour)},
	}
	crm := &mockCRMClient{customers: map[int64]*crmservice.Customer{
		100: {ID: 100, Name: "Ivan", Phone: "+7-900-000-00-00", Email: "ivan@example.com"},
	}}

	svc := newTestService(appointments, nil, crm)

	result, err := svc.GetDueNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, n := range result {
		require.NotNil(t, n.Contact)
		assert.Equal(t, "Ivan", n.Contact.Name)
	}
	assert.Equal(t, 1, crm.calls)
}

func TestGetDueNotifications_EmptyState(t *testing.T) {
	svc := newTestService(nil, nil, &mockCRMClient{})

	result, err := svc.GetDueNotifications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestMarkNotificationSent(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, CustomerID: 100, DateTime: now.Add(6 * time.Hour)},
	}
	jobs := []*domain.Job{
		{ID: 2, CustomerID: 101, Status: domain.StatusCompleted,
			CompletedAt: ptr.Ptr(now.Add(-10 * 24 * time.Hour))},
	}

	aptRepo := &mockAppointmentRepo{appointments: appointments}
	jobRepo := &mockJobRepo{jobs: jobs}
	svc := NewService(aptRepo, jobRepo, &mockCRMClient{}, 48*time.Hour, 7*24*time.Hour, noopLogger{})

	err := svc.MarkNotificationSent(context.Background(), &models.MarkNotificationSentRequest{
		Type:     string(domain.NotificationAppointmentReminder),
		TargetID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, aptRepo.reminderMarked)

	err = svc.MarkNotificationSent(context.Background(), &models.MarkNotificationSentRequest{
		Type:     string(domain.NotificationPaymentReminder),
		TargetID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, jobRepo.reminderMarked)
}

func TestMarkNotificationSent_Errors(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, &mockJobRepo{}, &mockCRMClient{},
		48*time.Hour, 7*24*time.Hour, noopLogger{})

	err := svc.MarkNotificationSent(context.Background(), &models.MarkNotificationSentRequest{
		Type:     string(domain.NotificationAppointmentReminder),
		TargetID: 99,
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)

	err = svc.MarkNotificationSent(context.Background(), &models.MarkNotificationSentRequest{
		Type:     string(domain.NotificationPaymentReminder),
		TargetID: 99,
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)

	err = svc.MarkNotificationSent(context.Background(), &models.MarkNotificationSentRequest{
		Type:     "SMOKE_SIGNAL",
		TargetID: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.MarkNotificationSent(context.Background(), &models.MarkNotificationSentRequest{
		Type:     string(domain.NotificationAppointmentReminder),
		TargetID: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
