package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	JobID  int64     // ID заявки, для которой подбираются слоты
	Date   time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	JobID      int64     // ID заявки
	ShopClosed bool      // Мастерская закрыта в эту дату
	Slots      []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время окончания работ при старте в этом слоте
	DurationMinutes int              // Длительность работ в минутах
	AvailableBays   int              // Количество свободных боксов на весь интервал
	TotalBays       int              // Общее количество боксов
}
