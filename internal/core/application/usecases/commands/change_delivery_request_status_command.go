package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/pkg/guard"
)

var ErrChangeDeliveryRequestStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryRequestStatusCommand must be created via NewChangeDeliveryRequestStatusCommand constructor",
)

type ChangeDeliveryRequestStatusCommand struct {
	requestID kernel.UUID
	actor     kernel.Actor
	status    request.Status

	guard guard.ConstructorGuard
}

func NewChangeDeliveryRequestStatusCommand(
	requestID kernel.UUID,
	actor kernel.Actor,
	status request.Status,
) (ChangeDeliveryRequestStatusCommand, error) {
	if err := errors.Join(
		requestID.Validate(),
		actor.ID.Validate(),
		actor.Role.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeDeliveryRequestStatusCommand{}, err
	}

	return ChangeDeliveryRequestStatusCommand{
		requestID: requestID,
		actor:     actor,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDeliveryRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryRequestStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryRequestStatusCommand) RequestID() kernel.UUID { return c.requestID }
func (c ChangeDeliveryRequestStatusCommand) Actor() kernel.Actor    { return c.actor }
func (c ChangeDeliveryRequestStatusCommand) Status() request.Status { return c.status }
