package pricingrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/pricing"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPricingRepository struct {
	db *gorm.DB
}

func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

func (r *GormPricingRepository) GetPlatformSettings(ctx context.Context) (pricing.PlatformSettings, error) {
	var rows []SettingDTO
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return pricing.PlatformSettings{}, err
	}

	values := make(map[string]float64, len(rows))
	for _, row := range rows {
		v, err := strconv.ParseFloat(row.Value, 64)
		if err != nil {
			return pricing.PlatformSettings{}, errs.NewValueIsInvalidErrorWithCause(
				"platform setting", fmt.Errorf("%s=%q: %w", row.Key, row.Value, err))
		}
		values[row.Key] = v
	}

	return pricing.SettingsFromValues(values)
}

func (r *GormPricingRepository) GetCity(ctx context.Context, id kernel.UUID) (*pricing.AllowedCity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AllowedCityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", id.String())
		}
		return nil, err
	}

	cityID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return pricing.NewAllowedCity(cityID, dto.Name, dto.State, dto.IsActive, dto.DeliveryFeePerKm, dto.MinimumOrderValue)
}
