package pricing

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrAllowedCityIsNotConstructed = errors.New("AllowedCity must be created via NewAllowedCity constructor")

// AllowedCity is a city the platform operates in. An active city overrides the per-km
// rate and the minimum order value; nil overrides fall back to the platform defaults.
type AllowedCity struct {
	id                kernel.UUID
	name              string
	state             string
	isActive          bool
	deliveryFeePerKm  *float64
	minimumOrderValue *float64

	isConstructed bool
}

func NewAllowedCity(
	id kernel.UUID,
	name string,
	state string,
	isActive bool,
	deliveryFeePerKm *float64,
	minimumOrderValue *float64,
) (*AllowedCity, error) {
	var errList []error
	errList = append(errList, id.Validate())
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city name"))
	}
	if deliveryFeePerKm != nil && *deliveryFeePerKm < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("delivery fee per km", *deliveryFeePerKm, 0, "unbounded"))
	}
	if minimumOrderValue != nil && *minimumOrderValue < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("minimum order value", *minimumOrderValue, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &AllowedCity{
		id:                id,
		name:              name,
		state:             state,
		isActive:          isActive,
		deliveryFeePerKm:  deliveryFeePerKm,
		minimumOrderValue: minimumOrderValue,
		isConstructed:     true,
	}, nil
}

func (c *AllowedCity) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrAllowedCityIsNotConstructed
	}
	return nil
}

func (c *AllowedCity) ID() kernel.UUID { return c.id }
func (c *AllowedCity) Name() string    { return c.name }
func (c *AllowedCity) State() string   { return c.state }
func (c *AllowedCity) IsActive() bool  { return c.isActive }

// FeePerKm returns the override rate when the city is active and has one.
func (c *AllowedCity) FeePerKm() (float64, bool) {
	if c == nil || !c.isActive || c.deliveryFeePerKm == nil {
		return 0, false
	}
	return *c.deliveryFeePerKm, true
}

// MinimumOrderValue returns the override value when the city is active and has one.
func (c *AllowedCity) MinimumOrderValue() (float64, bool) {
	if c == nil || !c.isActive || c.minimumOrderValue == nil {
		return 0, false
	}
	return *c.minimumOrderValue, true
}
