package models

import "time"

// CustomerContact контактные данные клиента из CRM
// nil, когда CRM недоступна или карточка не заведена
type CustomerContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// MarkNotificationSentRequest отметка о доставленном напоминании
// Приходит от внешнего доставщика после фактической отправки
type MarkNotificationSentRequest struct {
	UserID   int64  `json:"userId"`
	Type     string `json:"type"`
	TargetID int64  `json:"targetId"`
}

// NotificationResponse вычисленное напоминание
type NotificationResponse struct {
	Type       string           `json:"type"`
	TargetID   int64            `json:"targetId"`
	CustomerID int64            `json:"customerId"`
	DueDate    time.Time        `json:"dueDate"`
	Contact    *CustomerContact `json:"contact,omitempty"`
}
