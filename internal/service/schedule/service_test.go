package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	appointmentstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
	technicianstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/technician"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/ptr"
)

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

func (m *mockJobRepo) SetTechnician(_ context.Context, jobID int64, technicianID *int64) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return jobstorage.ErrJobNotFound
	}
	job.TechnicianID = technicianID
	return nil
}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, apt := range m.appointments {
		if apt.ID == id {
			return apt, nil
		}
	}
	return nil, appointmentstorage.ErrAppointmentNotFound
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

type mockTechnicianRepo struct {
	technicians map[int64]*domain.Technician
}

func (m *mockTechnicianRepo) GetByID(_ context.Context, id int64) (*domain.Technician, error) {
	tech, ok := m.technicians[id]
	if !ok {
		return nil, technicianstorage.ErrTechnicianNotFound
	}
	return tech, nil
}

func (m *mockTechnicianRepo) List(_ context.Context) ([]*domain.Technician, error) {
	result := make([]*domain.Technician, 0, len(m.technicians))
	for _, tech := range m.technicians {
		result = append(result, tech)
	}
	return result, nil
}

type mockSettingsRepo struct {
	config   *domain.ShopCalendarConfig
	getCalls int
}

func (m *mockSettingsRepo) Get(_ context.Context) (*domain.ShopCalendarConfig, error) {
	m.getCalls++
	return m.config, nil
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
			End:   "17:30",
		},
		BayCount: 2,
		Timezone: "UTC",
	}
}

func newTestService(jobs map[int64]*domain.Job, appointments []*domain.Appointment, config *domain.ShopCalendarConfig) *Service {
	return newTestServiceWithTechnicians(jobs, appointments, map[int64]*domain.Technician{}, config)
}

func newTestServiceWithTechnicians(
	jobs map[int64]*domain.Job,
	appointments []*domain.Appointment,
	technicians map[int64]*domain.Technician,
	config *domain.ShopCalendarConfig,
) *Service {
	return NewService(
		&mockJobRepo{jobs: jobs},
		&mockAppointmentRepo{appointments: appointments},
		&mockTechnicianRepo{technicians: technicians},
		&mockSettingsRepo{config: config},
		noopLogger{},
	)
}

func TestAssignTechnician_AssignAndUnassign(t *testing.T) {
	jobs := map[int64]*domain.Job{1: jobWithDuration(1, 1.0)}
	technicians := map[int64]*domain.Technician{
		5: {ID: 5, Name: "Alex", Specialty: "engine", Availability: map[string]bool{"Monday": true}},
	}

	svc := newTestServiceWithTechnicians(jobs, nil, technicians, testConfig())

	resp, err := svc.AssignTechnician(context.Background(), &models.AssignTechnicianRequest{
		JobID:        1,
		TechnicianID: ptr.Ptr(int64(5)),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.TechnicianID)
	assert.Equal(t, int64(5), *resp.TechnicianID)

	// NULL снимает назначение
	resp, err = svc.AssignTechnician(context.Background(), &models.AssignTechnicianRequest{
		JobID:        1,
		TechnicianID: nil,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.TechnicianID)
}

func TestAssignTechnician_NotFoundErrors(t *testing.T) {
	jobs := map[int64]*domain.Job{1: jobWithDuration(1, 1.0)}
	svc := newTestServiceWithTechnicians(jobs, nil, map[int64]*domain.Technician{}, testConfig())

	_, err := svc.AssignTechnician(context.Background(), &models.AssignTechnicianRequest{
		JobID:        99,
		TechnicianID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = svc.AssignTechnician(context.Background(), &models.AssignTechnicianRequest{
		JobID:        1,
		TechnicianID: ptr.Ptr(int64(5)),
	})
	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestGetAppointment(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 7, JobID: 1, CustomerID: 100, VehicleID: 200,
			DateTime: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)},
	}

	svc := newTestService(map[int64]*domain.Job{}, appointments, testConfig())

	resp, err := svc.GetAppointment(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.JobID)

	_, err = svc.GetAppointment(context.Background(), 8)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListTechnicians(t *testing.T) {
	technicians := map[int64]*domain.Technician{
		5: {ID: 5, Name: "Alex", Specialty: "engine", Availability: map[string]bool{"Monday": true, "Saturday": false}},
	}

	svc := newTestServiceWithTechnicians(map[int64]*domain.Job{}, nil, technicians, testConfig())

	resp, err := svc.ListTechnicians(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Alex", resp[0].Name)
	assert.True(t, resp[0].Availability["Monday"])
	assert.False(t, resp[0].Availability["Saturday"])
}
