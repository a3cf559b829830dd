package deliverer

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// VehicleType is what the deliverer rides. It does not affect dispatch or ETA.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
	VehicleCar        VehicleType = "car"
)

func (v VehicleType) Validate() error {
	switch v {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not supported", string(v)))
}
