package move_appointment

import "time"

// Request модель запроса на перенос записи
type Request struct {
	UserID        int64     // ID пользователя (для логирования, не влияет на результат)
	AppointmentID int64     // ID переносимой записи
	NewDate       time.Time // Новая дата (без времени); время начала работ сохраняется
}

// Response модель ответа с перенесенной записью
type Response struct {
	ID         int64     // ID записи
	JobID      int64     // ID заявки
	CustomerID int64     // ID клиента
	VehicleID  int64     // ID автомобиля
	DateTime   time.Time // Новый момент начала работ (UTC)
	UpdatedAt  time.Time

	// CapacityExceeded взводится, когда после переноса на новую дату занято
	// боксов больше, чем есть физически. Перенос при этом НЕ отклоняется:
	// диспетчер может сознательно перегрузить день
	CapacityExceeded bool
}
