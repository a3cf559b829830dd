package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery address must be created via NewDeliveryAddress constructor")

// DeliveryAddress is where the order is dropped off. Location drives tracking distance and ETA.
type DeliveryAddress struct {
	street   string
	city     string
	state    string
	zipCode  string
	location kernel.Location
	guard    guard.ConstructorGuard
}

func NewDeliveryAddress(street, city, state, zipCode string, location kernel.Location) (DeliveryAddress, error) {
	var errList []error
	if street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("street"))
	}
	if city == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	errList = append(errList, location.Validate())
	if err := errors.Join(errList...); err != nil {
		return DeliveryAddress{}, err
	}

	return DeliveryAddress{
		street:   street,
		city:     city,
		state:    state,
		zipCode:  zipCode,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a DeliveryAddress) Street() string            { return a.street }
func (a DeliveryAddress) City() string              { return a.city }
func (a DeliveryAddress) State() string             { return a.state }
func (a DeliveryAddress) ZipCode() string           { return a.zipCode }
func (a DeliveryAddress) Location() kernel.Location { return a.location }
