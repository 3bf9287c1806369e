package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-WorkshopScheduler/internal/usecase/get_available_slots"
)

// Границы группировки слотов для интерфейса планировщика
const noonMinutes = 12 * 60

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	JobID      int64           `json:"jobId"`
	ShopClosed bool            `json:"shopClosed"`
	Slots      []AvailableSlot `json:"slots"`
	Morning    []string        `json:"morning"`
	Afternoon  []string        `json:"afternoon"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time          string `json:"time"`
	EndTime       string `json:"endTime"`
	AvailableBays int    `json:"availableBays"`
	TotalBays     int    `json:"totalBays"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Слоты дополнительно группируются на утро и день: интерфейс планировщика
// показывает их двумя колонками
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	morning := make([]string, 0)
	afternoon := make([]string, 0)

	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:          slot.StartTime.String(),
			EndTime:       slot.EndTime.String(),
			AvailableBays: slot.AvailableBays,
			TotalBays:     slot.TotalBays,
		}

		if startMin, err := slot.StartTime.MinutesOfDay(); err == nil && startMin < noonMinutes {
			morning = append(morning, slot.StartTime.String())
		} else {
			afternoon = append(afternoon, slot.StartTime.String())
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		JobID:      resp.JobID,
		ShopClosed: resp.ShopClosed,
		Slots:      slots,
		Morning:    morning,
		Afternoon:  afternoon,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID, jobID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID: userID,
		JobID:  jobID,
		Date:   date,
	}, nil
}
