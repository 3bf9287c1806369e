package models

import "github.com/m04kA/SMC-WorkshopScheduler/pkg/types"

// UpdateSettingsRequest запрос на обновление календаря мастерской
// Конфигурация заменяется целиком: частичных обновлений нет, календарь мал
type UpdateSettingsRequest struct {
	UserID       int64            `json:"userId"`
	OpenWeekdays []string         `json:"openWeekdays"`
	OpenTime     types.TimeString `json:"openTime"`
	CloseTime    types.TimeString `json:"closeTime"`
	BayCount     int              `json:"bayCount"`
	Timezone     string           `json:"timezone"`
}

// SettingsResponse конфигурация календаря мастерской
type SettingsResponse struct {
	OpenWeekdays []string         `json:"openWeekdays"`
	OpenTime     types.TimeString `json:"openTime"`
	CloseTime    types.TimeString `json:"closeTime"`
	BayCount     int              `json:"bayCount"`
	Timezone     string           `json:"timezone"`
}
