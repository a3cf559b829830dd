// Package pricingrepo reads platform settings and city overrides.
package pricingrepo

import (
	"github.com/google/uuid"
)

type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (SettingDTO) TableName() string {
	return "platform_settings"
}

type AllowedCityDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	State             string
	IsActive          bool
	DeliveryFeePerKm  *float64 `gorm:"type:numeric(10,2)"`
	MinimumOrderValue *float64 `gorm:"type:numeric(10,2)"`
}

func (AllowedCityDTO) TableName() string {
	return "allowed_cities"
}
