package pricing

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// Keys of the platform_settings table.
const (
	KeyDefaultDeliveryFeePerKm  = "default_delivery_fee_per_km"
	KeyMinimumDeliveryFee       = "minimum_delivery_fee"
	KeyMaximumDeliveryDistance  = "maximum_delivery_distance"
	KeyDefaultMinimumOrderValue = "default_minimum_order_value"
)

// PlatformSettings are the platform-wide pricing defaults owned by the admin settings collaborator.
type PlatformSettings struct {
	DefaultDeliveryFeePerKm  float64
	MinimumDeliveryFee       float64
	MaximumDeliveryDistance  float64
	DefaultMinimumOrderValue float64
}

func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		DefaultDeliveryFeePerKm:  2.0,
		MinimumDeliveryFee:       5.0,
		MaximumDeliveryDistance:  10.0,
		DefaultMinimumOrderValue: 30.0,
	}
}

// SettingsFromValues overlays stored key/value pairs onto the defaults.
// Unknown keys are ignored, missing keys keep their default.
func SettingsFromValues(values map[string]float64) (PlatformSettings, error) {
	s := DefaultPlatformSettings()
	for key, target := range map[string]*float64{
		KeyDefaultDeliveryFeePerKm:  &s.DefaultDeliveryFeePerKm,
		KeyMinimumDeliveryFee:       &s.MinimumDeliveryFee,
		KeyMaximumDeliveryDistance:  &s.MaximumDeliveryDistance,
		KeyDefaultMinimumOrderValue: &s.DefaultMinimumOrderValue,
	} {
		if v, ok := values[key]; ok {
			*target = v
		}
	}
	if err := s.Validate(); err != nil {
		return PlatformSettings{}, err
	}
	return s, nil
}

func (s PlatformSettings) Validate() error {
	var errList []error
	if s.DefaultDeliveryFeePerKm < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(KeyDefaultDeliveryFeePerKm, s.DefaultDeliveryFeePerKm, 0, "unbounded"))
	}
	if s.MinimumDeliveryFee < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(KeyMinimumDeliveryFee, s.MinimumDeliveryFee, 0, "unbounded"))
	}
	if s.MaximumDeliveryDistance <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(KeyMaximumDeliveryDistance, s.MaximumDeliveryDistance, "0 (exclusive)", "unbounded"))
	}
	if s.DefaultMinimumOrderValue < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(KeyDefaultMinimumOrderValue, s.DefaultMinimumOrderValue, 0, "unbounded"))
	}
	return errors.Join(errList...)
}
