package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// GetOccupancyRange считает занятость боксов на каждую дату интервала
// [startDate, endDate] включительно; месячный вид календаря запрашивает
// до 62 дней за раз
func (s *Service) GetOccupancyRange(ctx context.Context, req *models.GetOccupancyRangeRequest) ([]*models.DayOccupancyResponse, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if req.EndDate.Sub(req.StartDate) > maxOccupancyRange {
		return nil, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, maxOccupancyRangeDays)
	}

	// Конфигурация одна на весь интервал: не перечитываем ее на каждую дату
	config, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetOccupancyRange: failed to get shop settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop settings: %v", ErrInternal, err)
	}

	loc, err := config.Location()
	if err != nil {
		s.logger.Error("GetOccupancyRange: invalid shop timezone %q: %v", config.Timezone, err)
		return nil, fmt.Errorf("%w: invalid shop timezone: %v", ErrInternal, err)
	}

	result := make([]*models.DayOccupancyResponse, 0)
	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, 1) {
		day, err := s.dayOccupancy(ctx, date, config, loc)
		if err != nil {
			return nil, err
		}
		result = append(result, day)
	}

	return result, nil
}

// GetDayOccupancy считает занятость боксов на дату методом заметающей прямой:
// каждая запись дает событие +1 на старте и -1 на финише, префиксная сумма
// по отсортированным событиям дает число занятых боксов в каждый момент дня
//
// Записи с висячей ссылкой на заявку пропускаются
func (s *Service) GetDayOccupancy(ctx context.Context, req *models.GetDayOccupancyRequest) (*models.DayOccupancyResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	config, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetDayOccupancy: failed to get shop settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get shop settings: %v", ErrInternal, err)
	}

	loc, err := config.Location()
	if err != nil {
		s.logger.Error("GetDayOccupancy: invalid shop timezone %q: %v", config.Timezone, err)
		return nil, fmt.Errorf("%w: invalid shop timezone: %v", ErrInternal, err)
	}

	return s.dayOccupancy(ctx, req.Date, config, loc)
}

func (s *Service) dayOccupancy(ctx context.Context, date time.Time, config *domain.ShopCalendarConfig, loc *time.Location) (*models.DayOccupancyResponse, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := s.appointmentRepo.ListForDateRange(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		s.logger.Error("GetDayOccupancy: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	jobIDs := make([]int64, 0, len(appointments))
	for _, apt := range appointments {
		jobIDs = append(jobIDs, apt.JobID)
	}

	jobs, err := s.jobRepo.GetByIDs(ctx, jobIDs)
	if err != nil {
		s.logger.Error("GetDayOccupancy: failed to get jobs for appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get jobs: %v", ErrInternal, err)
	}

	// События заметающей прямой в минутах локального дня
	events := make([]sweepEvent, 0, 2*len(appointments))
	for _, apt := range appointments {
		aptJob, ok := jobs[apt.JobID]
		if !ok {
			s.logger.Warn("GetDayOccupancy: appointment id=%d references missing job id=%d, skipping",
				apt.ID, apt.JobID)
			continue
		}

		local := apt.DateTime.In(loc)
		startMin := local.Hour()*60 + local.Minute()
		events = append(events,
			sweepEvent{minute: startMin, delta: +1},
			sweepEvent{minute: startMin + aptJob.DurationMinutes(), delta: -1},
		)
	}

	maxOccupancy, segments := sweepOccupancy(events)

	s.logger.Info("GetDayOccupancy: date=%s, maxOccupancy=%d/%d",
		date.Format("2006-01-02"), maxOccupancy, config.BayCount)

	return &models.DayOccupancyResponse{
		Date:         date,
		BayCount:     config.BayCount,
		MaxOccupancy: maxOccupancy,
		Overbooked:   maxOccupancy > config.BayCount,
		Segments:     segments,
	}, nil
}

const maxOccupancyRangeDays = 62

var maxOccupancyRange = time.Duration(maxOccupancyRangeDays) * 24 * time.Hour

type sweepEvent struct {
	minute int
	delta  int
}

// sweepOccupancy выполняет проход заметающей прямой по событиям
// Возвращает максимум одновременно занятых боксов и отрезки дня
// с постоянной ненулевой занятостью
//
// Сортировка стабильная и только по времени: события одной минуты обрабатываются
// в порядке вставки. Записи приходят из репозитория в хронологическом порядке,
// поэтому -1 завершающейся работы стоит раньше +1 начинающейся и граничащие
// работы не считаются одновременными
func sweepOccupancy(events []sweepEvent) (int, []models.OccupancySegment) {
	if len(events) == 0 {
		return 0, []models.OccupancySegment{}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].minute < events[j].minute
	})

	maxOccupancy := 0
	current := 0
	segments := make([]models.OccupancySegment, 0)

	prevMinute := events[0].minute
	for _, ev := range events {
		if ev.minute > prevMinute && current > 0 {
			segments = append(segments, models.OccupancySegment{
				Start:    types.NewTimeStringFromMinutes(prevMinute),
				End:      types.NewTimeStringFromMinutes(ev.minute),
				BusyBays: current,
			})
		}
		if ev.minute > prevMinute {
			prevMinute = ev.minute
		}

		current += ev.delta
		if current > maxOccupancy {
			maxOccupancy = current
		}
	}

	return maxOccupancy, segments
}
