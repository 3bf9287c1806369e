package move_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	appointmentstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
)

type mockAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := m.appointments[id]
	if !ok {
		return nil, appointmentstorage.ErrAppointmentNotFound
	}
	return apt, nil
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

func (m *mockAppointmentRepo) UpdateDateTime(_ context.Context, id int64, dateTime time.Time) (*domain.Appointment, error) {
	apt, ok := m.appointments[id]
	if !ok {
		return nil, appointmentstorage.ErrAppointmentNotFound
	}
	apt.DateTime = dateTime
	return apt, nil
}

type mockJobRepo struct {
	jobs map[int64]*domain.Job
}

func (m *mockJobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, jobstorage.ErrJobNotFound
	}
	return job, nil
}

func (m *mockJobRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*domain.Job, error) {
	result := make(map[int64]*domain.Job)
	for _, id := range ids {
		if job, ok := m.jobs[id]; ok {
			result[id] = job
		}
	}
	return result, nil
}

type mockSettingsRepo struct {
	config *domain.ShopCalendarConfig
}

func (m *mockSettingsRepo) Get(_ context.Context) (*domain.ShopCalendarConfig, error) {
	return m.config, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.ShopCalendarConfig {
	return &domain.ShopCalendarConfig{
		OpenWeekdays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		OperatingHours: domain.OperatingHours{
			Start: "08:00",
			End:   "17:00",
		},
		BayCount: 1,
		Timezone: "UTC",
	}
}

func oneHourJob(id int64) *domain.Job {
	return &domain.Job{
		ID:                     id,
		CustomerID:             100,
		VehicleID:              200,
		Status:                 domain.StatusWorkInProgress,
		EstimatedDurationHours: 1.0,
	}
}

func newTestUseCase(aptRepo *mockAppointmentRepo, jobRepo *mockJobRepo, config *domain.ShopCalendarConfig) *UseCase {
	return NewUseCase(aptRepo, jobRepo, &mockSettingsRepo{config: config}, passthroughTxManager{}, noopLogger{})
}

func TestExecute_PreservesTimeOfDay(t *testing.T) {
	aptRepo := &mockAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, JobID: 1, CustomerID: 100, VehicleID: 200,
			DateTime: time.Date(2025, 10, 13, 10, 30, 0, 0, time.UTC)},
	}}
	jobRepo := &mockJobRepo{jobs: map[int64]*domain.Job{1: oneHourJob(1)}}

	uc := newTestUseCase(aptRepo, jobRepo, testConfig())

	newDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, NewDate: newDate})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), resp.DateTime)
	assert.False(t, resp.CapacityExceeded)
}

func TestExecute_PreservesShopLocalTimeAcrossZones(t *testing.T) {
	config := testConfig()
	config.Timezone = "Europe/Moscow"

	// 07:30 UTC = 10:30 по Москве
	aptRepo := &mockAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, JobID: 1, CustomerID: 100, VehicleID: 200,
			DateTime: time.Date(2025, 10, 13, 7, 30, 0, 0, time.UTC)},
	}}
	jobRepo := &mockJobRepo{jobs: map[int64]*domain.Job{1: oneHourJob(1)}}

	uc := newTestUseCase(aptRepo, jobRepo, config)

	newDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, NewDate: newDate})
	require.NoError(t, err)

	// Локальные 10:30 сохранились: 15 октября 07:30 UTC
	assert.Equal(t, time.Date(2025, 10, 15, 7, 30, 0, 0, time.UTC), resp.DateTime)
}

func TestExecute_CapacityExceededWarningNotRejection(t *testing.T) {
	// Единственный бокс на 15 октября уже занят 10:00-11:00
	aptRepo := &mockAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, JobID: 1, CustomerID: 100, VehicleID: 200,
			DateTime: time.Date(2025, 10, 13, 10, 30, 0, 0, time.UTC)},
		2: {ID: 2, JobID: 2, CustomerID: 101, VehicleID: 201,
			DateTime: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)},
	}}
	jobRepo := &mockJobRepo{jobs: map[int64]*domain.Job{1: oneHourJob(1), 2: oneHourJob(2)}}

	uc := newTestUseCase(aptRepo, jobRepo, testConfig())

	newDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 1, NewDate: newDate})
	require.NoError(t, err)

	// Перенос состоялся, но день перегружен
	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), resp.DateTime)
	assert.True(t, resp.CapacityExceeded)
}

func TestExecute_NotFoundErrors(t *testing.T) {
	aptRepo := &mockAppointmentRepo{appointments: map[int64]*domain.Appointment{
		1: {ID: 1, JobID: 99, DateTime: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)},
	}}
	jobRepo := &mockJobRepo{jobs: map[int64]*domain.Job{}}

	uc := newTestUseCase(aptRepo, jobRepo, testConfig())

	newDate := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, NewDate: newDate})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// Перенос - модифицирующая операция: висячая ссылка на заявку фатальна
	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 1, NewDate: newDate})
	assert.ErrorIs(t, err, ErrJobNotFound)
}
