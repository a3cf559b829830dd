package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateDeliveryRequestCommandIsNotConstructed = errors.New(
	"CreateDeliveryRequestCommand must be created via NewCreateDeliveryRequestCommand constructor",
)

// CreateDeliveryRequestCommand opens an ad-hoc delivery job for the calling client.
type CreateDeliveryRequestCommand struct {
	requestID       kernel.UUID
	clientID        kernel.UUID
	pickup          request.Endpoint
	dropoff         request.Endpoint
	itemDescription string
	paymentMethod   kernel.PaymentMethod

	guard guard.ConstructorGuard
}

func NewCreateDeliveryRequestCommand(
	actor kernel.Actor,
	requestID kernel.UUID,
	pickup request.Endpoint,
	dropoff request.Endpoint,
	itemDescription string,
	paymentMethod kernel.PaymentMethod,
) (CreateDeliveryRequestCommand, error) {
	if actor.Role != kernel.RoleClient {
		return CreateDeliveryRequestCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "create delivery requests")
	}

	var errList []error
	errList = append(errList, requestID.Validate(), actor.ID.Validate(), paymentMethod.Validate())
	if pickup.Address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup address"))
	}
	if dropoff.Address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateDeliveryRequestCommand{}, err
	}

	return CreateDeliveryRequestCommand{
		requestID:       requestID,
		clientID:        actor.ID,
		pickup:          pickup,
		dropoff:         dropoff,
		itemDescription: itemDescription,
		paymentMethod:   paymentMethod,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryRequestCommandIsNotConstructed)
}

func (c CreateDeliveryRequestCommand) RequestID() kernel.UUID              { return c.requestID }
func (c CreateDeliveryRequestCommand) ClientID() kernel.UUID               { return c.clientID }
func (c CreateDeliveryRequestCommand) Pickup() request.Endpoint            { return c.pickup }
func (c CreateDeliveryRequestCommand) Dropoff() request.Endpoint           { return c.dropoff }
func (c CreateDeliveryRequestCommand) ItemDescription() string             { return c.itemDescription }
func (c CreateDeliveryRequestCommand) PaymentMethod() kernel.PaymentMethod { return c.paymentMethod }
