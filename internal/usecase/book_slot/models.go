package book_slot

import (
	"time"

	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	UserID    int64            // ID пользователя (для логирования, не влияет на результат)
	JobID     int64            // ID заявки
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала работ (например, "10:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64     // ID записи
	JobID      int64     // ID заявки
	CustomerID int64     // ID клиента
	VehicleID  int64     // ID автомобиля
	DateTime   time.Time // Момент начала работ (UTC)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
