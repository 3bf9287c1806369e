package delete_job

// Request модель запроса на удаление заявки
type Request struct {
	UserID int64 // ID пользователя (для логирования, не влияет на результат)
	JobID  int64 // ID удаляемой заявки
}
