package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand ingests an order that checkout already priced.
//
// Example:
//
//	addr, _ := order.NewDeliveryAddress("Av. Paulista, 1000", "São Paulo", "SP", "01310-100", loc)
//	cmd, err := NewPlaceOrderCommand(actor, kernel.NewUUID(), clientID, storeID, addr, 58.9, 7.5, kernel.PaymentMethodPix)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	number, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	clientID      kernel.UUID
	storeID       kernel.UUID
	address       order.DeliveryAddress
	totalAmount   float64
	deliveryFee   float64
	paymentMethod kernel.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand accepts admin and store callers; a store may only place its own orders.
func NewPlaceOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	clientID kernel.UUID,
	storeID kernel.UUID,
	address order.DeliveryAddress,
	totalAmount float64,
	deliveryFee float64,
	paymentMethod kernel.PaymentMethod,
) (PlaceOrderCommand, error) {
	switch {
	case actor.IsAdmin():
	case actor.Role == kernel.RoleStore && actor.ID.IsEqual(storeID):
	default:
		return PlaceOrderCommand{}, errs.NewActionIsForbiddenError(actor.Role.String(), "place orders for this store")
	}

	c := PlaceOrderCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		orderID.Validate(),
		clientID.Validate(),
		storeID.Validate(),
		address.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	c.orderID = orderID
	c.clientID = clientID
	c.storeID = storeID
	c.address = address
	c.totalAmount = totalAmount
	c.deliveryFee = deliveryFee
	c.paymentMethod = paymentMethod
	return c, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID                { return c.orderID }
func (c PlaceOrderCommand) ClientID() kernel.UUID               { return c.clientID }
func (c PlaceOrderCommand) StoreID() kernel.UUID                { return c.storeID }
func (c PlaceOrderCommand) Address() order.DeliveryAddress      { return c.address }
func (c PlaceOrderCommand) TotalAmount() float64                { return c.totalAmount }
func (c PlaceOrderCommand) DeliveryFee() float64                { return c.deliveryFee }
func (c PlaceOrderCommand) PaymentMethod() kernel.PaymentMethod { return c.paymentMethod }
