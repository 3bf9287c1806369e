package update_shop_config

import (
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/settings/models"
	"github.com/m04kA/SMC-WorkshopScheduler/pkg/types"
)

// UpdateShopConfigRequest запрос на замену конфигурации календаря
type UpdateShopConfigRequest struct {
	UserID       int64            `json:"userId"`
	OpenWeekdays []string         `json:"openWeekdays"`
	OpenTime     types.TimeString `json:"openTime"`
	CloseTime    types.TimeString `json:"closeTime"`
	BayCount     int              `json:"bayCount"`
	Timezone     string           `json:"timezone"`
}

// ToServiceRequest конвертирует HTTP-запрос в запрос сервиса
func (r *UpdateShopConfigRequest) ToServiceRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:       r.UserID,
		OpenWeekdays: r.OpenWeekdays,
		OpenTime:     r.OpenTime,
		CloseTime:    r.CloseTime,
		BayCount:     r.BayCount,
		Timezone:     r.Timezone,
	}
}
