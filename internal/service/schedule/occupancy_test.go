package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

var testMonday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func jobWithDuration(id int64, hours float64) *domain.Job {
	return &domain.Job{
		ID:                     id,
		CustomerID:             100,
		VehicleID:              200,
		Status:                 domain.StatusWorkInProgress,
		EstimatedDurationHours: hours,
	}
}

func appointmentAt(id, jobID int64, hour, minute int) *domain.Appointment {
	return &domain.Appointment{
		ID:       id,
		JobID:    jobID,
		DateTime: time.Date(2025, 10, 13, hour, minute, 0, 0, time.UTC),
	}
}

func TestGetDayOccupancy_SweepLineMax(t *testing.T) {
	// 09:00-10:00, 09:30-10:30, 09:45-10:15: в 09:45 заняты все три бокса
	jobs := map[int64]*domain.Job{
		1: jobWithDuration(1, 1.0),
		2: jobWithDuration(2, 1.0),
		3: jobWithDuration(3, 0.5),
	}
	appointments := []*domain.Appointment{
		appointmentAt(10, 1, 9, 0),
		appointmentAt(11, 2, 9, 30),
		appointmentAt(12, 3, 9, 45),
	}

	svc := newTestService(jobs, appointments, testConfig())

	resp, err := svc.GetDayOccupancy(context.Background(), &models.GetDayOccupancyRequest{Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.MaxOccupancy)
	assert.True(t, resp.Overbooked) // боксов всего 2
	assert.Equal(t, 2, resp.BayCount)
}

func TestGetDayOccupancy_BoundaryTouchNotConcurrent(t *testing.T) {
	// 09:00-10:00 и 10:00-11:00 граничат: одновременной работы нет
	jobs := map[int64]*domain.Job{
		1: jobWithDuration(1, 1.0),
		2: jobWithDuration(2, 1.0),
	}
	appointments := []*domain.Appointment{
		appointmentAt(10, 1, 9, 0),
		appointmentAt(11, 2, 10, 0),
	}

	svc := newTestService(jobs, appointments, testConfig())

	resp, err := svc.GetDayOccupancy(context.Background(), &models.GetDayOccupancyRequest{Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.MaxOccupancy)
	assert.False(t, resp.Overbooked)

	require.Len(t, resp.Segments, 2)
	assert.Equal(t, types.TimeString("09:00"), resp.Segments[0].Start)
	assert.Equal(t, types.TimeString("10:00"), resp.Segments[0].End)
	assert.Equal(t, 1, resp.Segments[0].BusyBays)
	assert.Equal(t, types.TimeString("10:00"), resp.Segments[1].Start)
	assert.Equal(t, types.TimeString("11:00"), resp.Segments[1].End)
}

func TestGetDayOccupancy_EmptyDay(t *testing.T) {
	svc := newTestService(map[int64]*domain.Job{}, nil, testConfig())

	resp, err := svc.GetDayOccupancy(context.Background(), &models.GetDayOccupancyRequest{Date: testMonday})
	require.NoError(t, err)

	assert.Zero(t, resp.MaxOccupancy)
	assert.Empty(t, resp.Segments)
}

func TestGetDayOccupancy_DanglingAppointmentSkipped(t *testing.T) {
	jobs := map[int64]*domain.Job{1: jobWithDuration(1, 1.0)}
	appointments := []*domain.Appointment{
		appointmentAt(10, 1, 9, 0),
		appointmentAt(11, 99, 9, 30), // заявка 99 удалена
	}

	svc := newTestService(jobs, appointments, testConfig())

	resp, err := svc.GetDayOccupancy(context.Background(), &models.GetDayOccupancyRequest{Date: testMonday})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.MaxOccupancy)
}

func TestGetOccupancyRange_PerDayMaxima(t *testing.T) {
	jobs := map[int64]*domain.Job{
		1: jobWithDuration(1, 1.0),
		2: jobWithDuration(2, 1.0),
	}
	// Понедельник: две пересекающиеся работы; вторник пустой
	appointments := []*domain.Appointment{
		appointmentAt(10, 1, 9, 0),
		appointmentAt(11, 2, 9, 30),
	}

	svc := newTestService(jobs, appointments, testConfig())

	tuesday := testMonday.AddDate(0, 0, 1)
	resp, err := svc.GetOccupancyRange(context.Background(), &models.GetOccupancyRangeRequest{
		StartDate: testMonday,
		EndDate:   tuesday,
	})
	require.NoError(t, err)
	require.Len(t, resp, 2)

	assert.Equal(t, 2, resp[0].MaxOccupancy)
	assert.Zero(t, resp[1].MaxOccupancy)
}

func TestGetOccupancyRange_FetchesSettingsOnce(t *testing.T) {
	settingsRepo := &mockSettingsRepo{config: testConfig()}
	svc := NewService(
		&mockJobRepo{jobs: map[int64]*domain.Job{}},
		&mockAppointmentRepo{},
		&mockTechnicianRepo{},
		settingsRepo,
		noopLogger{},
	)

	resp, err := svc.GetOccupancyRange(context.Background(), &models.GetOccupancyRangeRequest{
		StartDate: testMonday,
		EndDate:   testMonday.AddDate(0, 0, 30),
	})
	require.NoError(t, err)
	require.Len(t, resp, 31)

	// Конфигурация календаря читается один раз на весь интервал
	assert.Equal(t, 1, settingsRepo.getCalls)
}

func TestGetOccupancyRange_Validation(t *testing.T) {
	svc := newTestService(map[int64]*domain.Job{}, nil, testConfig())

	_, err := svc.GetOccupancyRange(context.Background(), &models.GetOccupancyRangeRequest{
		StartDate: testMonday,
		EndDate:   testMonday.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetOccupancyRange(context.Background(), &models.GetOccupancyRangeRequest{
		StartDate: testMonday,
		EndDate:   testMonday.AddDate(0, 0, 90),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetDayOccupancy_SegmentsTrackConcurrency(t *testing.T) {
	// 09:00-10:00 и 09:30-10:30: пик в 09:30-10:00
	jobs := map[int64]*domain.Job{
		1: jobWithDuration(1, 1.0),
		2: jobWithDuration(2, 1.0),
	}
	appointments := []*domain.Appointment{
		appointmentAt(10, 1, 9, 0),
		appointmentAt(11, 2, 9, 30),
	}

	svc := newTestService(jobs, appointments, testConfig())

	resp, err := svc.GetDayOccupancy(context.Background(), &models.GetDayOccupancyRequest{Date: testMonday})
	require.NoError(t, err)

	require.Len(t, resp.Segments, 3)
	assert.Equal(t, 1, resp.Segments[0].BusyBays) // 09:00-09:30
	assert.Equal(t, 2, resp.Segments[1].BusyBays) // 09:30-10:00
	assert.Equal(t, 1, resp.Segments[2].BusyBays) // 10:00-10:30
	assert.Equal(t, 2, resp.MaxOccupancy)
}
