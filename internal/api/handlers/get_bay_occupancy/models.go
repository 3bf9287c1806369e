package get_bay_occupancy

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// SegmentResponse отрезок дня с постоянным числом занятых боксов
type SegmentResponse struct {
	Start    types.TimeString `json:"start"`
	End      types.TimeString `json:"end"`
	BusyBays int              `json:"busyBays"`
}

// DayOccupancyResponse занятость боксов на одну дату интервала
type DayOccupancyResponse struct {
	Date              string            `json:"date"`
	BayCount          int               `json:"bayCount"`
	MaxConcurrentBays int               `json:"maxConcurrentBays"`
	Overbooked        bool              `json:"overbooked"`
	Segments          []SegmentResponse `json:"segments"`
}

// GetOccupancyResponse занятость боксов по дням интервала
type GetOccupancyResponse struct {
	StartDate string                  `json:"startDate"`
	EndDate   string                  `json:"endDate"`
	Days      []*DayOccupancyResponse `json:"days"`
}

// ToServiceRequest разбирает даты интервала в запрос сервиса
func ToServiceRequest(startDate, endDate string) (*models.GetOccupancyRangeRequest, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return nil, err
	}

	return &models.GetOccupancyRangeRequest{
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromServiceResponse конвертирует дни занятости в ответ API
func FromServiceResponse(startDate, endDate string, days []*models.DayOccupancyResponse) *GetOccupancyResponse {
	result := &GetOccupancyResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Days:      make([]*DayOccupancyResponse, 0, len(days)),
	}

	for _, day := range days {
		segments := make([]SegmentResponse, 0, len(day.Segments))
		for _, seg := range day.Segments {
			segments = append(segments, SegmentResponse{
				Start:    seg.Start,
				End:      seg.End,
				BusyBays: seg.BusyBays,
			})
		}

		result.Days = append(result.Days, &DayOccupancyResponse{
			Date:              day.Date.Format(domain.DateFormat),
			BayCount:          day.BayCount,
			MaxConcurrentBays: day.MaxOccupancy,
			Overbooked:        day.Overbooked,
			Segments:          segments,
		})
	}

	return result
}
