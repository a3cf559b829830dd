package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// maxOrderNumberAttempts bounds the retries on order number collisions.
const maxOrderNumberAttempts = 10

var ErrOrderNumberIsExhausted = errors.New("could not generate a unique order number")

// PlaceOrderCommandHandler persists a new pending order under a fresh six-digit number.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	newNumber  func() string
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		newNumber:  order.NewOrderNumber,
	}
}

// Handle returns the number assigned to the order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number, err := h.uniqueNumber(ctx, orderRepo.NumberExists)
	if err != nil {
		return "", err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.ClientID(),
		cmd.StoreID(),
		cmd.Address(),
		cmd.TotalAmount(),
		cmd.DeliveryFee(),
		cmd.PaymentMethod(),
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return number, nil
}

func (h PlaceOrderCommandHandler) uniqueNumber(
	ctx context.Context,
	exists func(context.Context, string) (bool, error),
) (string, error) {
	for range maxOrderNumberAttempts {
		number := h.newNumber()
		taken, err := exists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return "", ErrOrderNumberIsExhausted
}
