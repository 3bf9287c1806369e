package get_available_slots

import (
	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// occupiedInterval занятый интервал в минутах локального дня мастерской
type occupiedInterval struct {
	startMin int
	endMin   int
}

// generateAvailableSlots генерирует доступные слоты для работ заданной длительности
// Кандидаты идут от открытия мастерской с шагом 15 минут; слот допустим, только если
// работы целиком укладываются в рабочее окно и хотя бы один бокс свободен на весь интервал
func generateAvailableSlots(
	config *domain.ShopCalendarConfig,
	durationMinutes int,
	occupied []occupiedInterval,
) ([]Slot, error) {
	openMin, closeMin, err := config.OperatingWindow()
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0)

	for startMin := openMin; startMin+durationMinutes <= closeMin; startMin += domain.SlotStepMinutes {
		endMin := startMin + durationMinutes

		busy := countOverlapping(startMin, endMin, occupied)
		available := config.BayCount - busy
		if available <= 0 {
			continue
		}

		slots = append(slots, Slot{
			StartTime:       types.NewTimeStringFromMinutes(startMin),
			EndTime:         types.NewTimeStringFromMinutes(endMin),
			DurationMinutes: durationMinutes,
			AvailableBays:   available,
			TotalBays:       config.BayCount,
		})
	}

	return slots, nil
}

// countOverlapping подсчитывает количество занятых интервалов, пересекающихся с кандидатом
// Пересечение есть только если интервалы действительно накладываются друг на друга
// Если одна работа заканчивается ровно там, где начинается кандидат (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Кандидат 11:30-12:00, работа 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Кандидат 11:30-12:00, работа 11:00-11:30 → НЕТ пересечения (граничат)
// - Кандидат 11:30-12:00, работа 12:00-12:30 → НЕТ пересечения (граничат)
func countOverlapping(startMin, endMin int, occupied []occupiedInterval) int {
	count := 0

	for _, iv := range occupied {
		// Строгие неравенства: граничные случаи не считаются пересечением
		if iv.startMin < endMin && iv.endMin > startMin {
			count++
		}
	}

	return count
}
