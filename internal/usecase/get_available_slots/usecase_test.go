package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	jobstorage "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
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

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
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

type mockSettingsRepo struct {
	config *domain.ShopCalendarConfig
}

func (m *mockSettingsRepo) Get(_ context.Context) (*domain.ShopCalendarConfig, error) {
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
			End:   "17:00",
		},
		BayCount: 2,
		Timezone: "UTC",
	}
}

func newTestUseCase(jobs map[int64]*domain.Job, appointments []*domain.Appointment, config *domain.ShopCalendarConfig) *UseCase {
	return NewUseCase(
		&mockJobRepo{jobs: jobs},
		&mockAppointmentRepo{appointments: appointments},
		&mockSettingsRepo{config: config},
		noopLogger{},
	)
}

// Понедельник в UTC конфигурации
var testMonday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func oneHourJob(id int64) *domain.Job {
	return &domain.Job{
		ID:                     id,
		CustomerID:             100,
		VehicleID:              200,
		Status:                 domain.StatusApproved,
		EstimatedDurationHours: 1.0,
	}
}

func appointmentAt(id, jobID int64, hour, minute int) *domain.Appointment {
	return &domain.Appointment{
		ID:       id,
		JobID:    jobID,
		DateTime: time.Date(2025, 10, 13, hour, minute, 0, 0, time.UTC),
	}
}

func TestExecute_EmptyDayAllSlotsOnStep(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Job{1: oneHourJob(1)}, nil, testConfig())

	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	require.NoError(t, err)
	assert.False(t, resp.ShopClosed)

	// 08:00..16:00 включительно с шагом 15 минут: работы на час должны
	// завершиться не позже 17:00
	require.Len(t, resp.Slots, 33)
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1].StartTime)

	// Каждый слот лежит на сетке 15 минут внутри рабочего окна
	for _, slot := range resp.Slots {
		startMin, err := slot.StartTime.MinutesOfDay()
		require.NoError(t, err)
		assert.Zero(t, (startMin-8*60)%domain.SlotStepMinutes)
		assert.GreaterOrEqual(t, startMin, 8*60)
		assert.LessOrEqual(t, startMin+slot.DurationMinutes, 17*60)
		assert.Equal(t, 2, slot.AvailableBays)
	}
}

func TestExecute_ClosedDayReturnsNoSlots(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Job{1: oneHourJob(1)}, nil, testConfig())

	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: saturday})
	require.NoError(t, err)

	assert.True(t, resp.ShopClosed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CapacityRespected(t *testing.T) {
	// Оба бокса заняты с 09:00 до 10:00
	jobs := map[int64]*domain.Job{
		1: oneHourJob(1),
		2: oneHourJob(2),
		3: oneHourJob(3),
	}
	appointments := []*domain.Appointment{
		appointmentAt(10, 2, 9, 0),
		appointmentAt(11, 3, 9, 0),
	}

	uc := newTestUseCase(jobs, appointments, testConfig())

	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	require.NoError(t, err)

	starts := make(map[types.TimeString]Slot)
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = slot
	}

	// Часовая работа, начатая в 08:15..09:45, пересекла бы интервал 09:00-10:00
	for _, blocked := range []types.TimeString{"08:15", "08:30", "08:45", "09:00", "09:15", "09:30", "09:45"} {
		_, ok := starts[blocked]
		assert.Falsef(t, ok, "slot %s must be unavailable", blocked)
	}

	// Граничные старты не пересекаются с занятым интервалом
	assert.Contains(t, starts, types.TimeString("08:00"))
	assert.Contains(t, starts, types.TimeString("10:00"))
}

func TestExecute_BoundaryTouchIsNotOverlap(t *testing.T) {
	// Один бокс: работа 09:00-10:00 занимает его целиком
	config := testConfig()
	config.BayCount = 1

	jobs := map[int64]*domain.Job{
		1: oneHourJob(1),
		2: oneHourJob(2),
	}
	appointments := []*domain.Appointment{appointmentAt(10, 2, 9, 0)}

	uc := newTestUseCase(jobs, appointments, config)

	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	require.NoError(t, err)

	starts := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
	}

	// Работа, заканчивающаяся в 09:00 или начинающаяся в 10:00, граничит, но не пересекается
	assert.True(t, starts["08:00"])
	assert.True(t, starts["10:00"])
	assert.False(t, starts["09:00"])
	assert.False(t, starts["08:30"])
}

func TestExecute_DanglingAppointmentSkipped(t *testing.T) {
	config := testConfig()
	config.BayCount = 1

	// Заявка 99 удалена: ее запись не должна блокировать расчет
	jobs := map[int64]*domain.Job{1: oneHourJob(1)}
	appointments := []*domain.Appointment{appointmentAt(10, 99, 9, 0)}

	uc := newTestUseCase(jobs, appointments, config)

	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	require.NoError(t, err)

	starts := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
	}
	assert.True(t, starts["09:00"])
}

func TestExecute_FractionalDurationAgainstHalfHourClose(t *testing.T) {
	// Окно 08:00-17:30, два бокса, один занят работами 10:00-12:00.
	// Запрошенные работы на полтора часа: длительность и граница окна
	// не кратны целому часу
	config := testConfig()
	config.OperatingHours.End = "17:30"

	ninetyMinutes := oneHourJob(1)
	ninetyMinutes.EstimatedDurationHours = 1.5

	twoHours := oneHourJob(2)
	twoHours.EstimatedDurationHours = 2.0

	jobs := map[int64]*domain.Job{1: ninetyMinutes, 2: twoHours}
	appointments := []*domain.Appointment{appointmentAt(10, 2, 10, 0)}

	uc := newTestUseCase(jobs, appointments, config)

	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	require.NoError(t, err)

	starts := make(map[types.TimeString]Slot)
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = slot
	}

	// 08:00-09:30 не пересекается с занятым интервалом: оба бокса свободны
	require.Contains(t, starts, types.TimeString("08:00"))
	assert.Equal(t, 2, starts["08:00"].AvailableBays)

	// 10:30-12:00 пересекается с работами 10:00-12:00: остается один бокс
	require.Contains(t, starts, types.TimeString("10:30"))
	assert.Equal(t, 1, starts["10:30"].AvailableBays)

	// 16:00-17:30 вписывается в окно впритык, 16:15-17:45 уже нет
	require.Contains(t, starts, types.TimeString("16:00"))
	assert.Equal(t, types.TimeString("17:30"), starts["16:00"].EndTime)
	assert.NotContains(t, starts, types.TimeString("16:15"))
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecute_RepeatedCallsIdentical(t *testing.T) {
	jobs := map[int64]*domain.Job{
		1: oneHourJob(1),
		2: oneHourJob(2),
	}
	appointments := []*domain.Appointment{appointmentAt(10, 2, 9, 0)}

	uc := newTestUseCase(jobs, appointments, testConfig())
	req := &Request{JobID: 1, Date: testMonday}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_DurationValidation(t *testing.T) {
	zeroDuration := oneHourJob(1)
	zeroDuration.EstimatedDurationHours = 0

	tooLong := oneHourJob(2)
	tooLong.EstimatedDurationHours = 25

	uc := newTestUseCase(map[int64]*domain.Job{1: zeroDuration, 2: tooLong}, nil, testConfig())

	_, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = uc.Execute(context.Background(), &Request{JobID: 2, Date: testMonday})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_JobNotFound(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Job{}, nil, testConfig())

	_, err := uc.Execute(context.Background(), &Request{JobID: 42, Date: testMonday})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestExecute_JobLongerThanDayNoSlots(t *testing.T) {
	// Окно 08:00-17:00 = 9 часов, работы на 10 часов не помещаются
	longJob := oneHourJob(1)
	longJob.EstimatedDurationHours = 10

	uc := newTestUseCase(map[int64]*domain.Job{1: longJob}, nil, testConfig())

	resp, err := uc.Execute(context.Background(), &Request{JobID: 1, Date: testMonday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
