package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	orderNumberLength = 6
	noteTimeLayout    = "02/01/2006 15:04"
	noteSeparator     = "\n\n"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle. It is created by checkout
// (already priced) and afterwards changed only through Transition, Claim and Reassign.
// Orders are never deleted; cancellation is terminal.
type Order struct {
	id            kernel.UUID
	number        string
	clientID      kernel.UUID
	storeID       kernel.UUID
	delivererID   *kernel.UUID
	status        Status
	totalAmount   float64
	deliveryFee   float64
	paymentMethod kernel.PaymentMethod
	paymentStatus PaymentStatus
	address       DeliveryAddress
	notes         string
	createdAt     time.Time
	updatedAt     time.Time

	events []StatusChanged

	isConstructed bool
}

// Snapshot is the persisted state of an Order, used by RestoreOrder.
type Snapshot struct {
	ID            kernel.UUID
	Number        string
	ClientID      kernel.UUID
	StoreID       kernel.UUID
	DelivererID   *kernel.UUID
	Status        Status
	TotalAmount   float64
	DeliveryFee   float64
	PaymentMethod kernel.PaymentMethod
	PaymentStatus PaymentStatus
	Address       DeliveryAddress
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrderNumber returns a random six digit order number. Uniqueness is checked by the caller.
func NewOrderNumber() string {
	var b strings.Builder
	for range orderNumberLength {
		b.WriteByte(byte('0' + rand.IntN(10))) //nolint:gosec // not security sensitive
	}
	return b.String()
}

// NewOrder ingests a priced order from checkout in Pending status with no deliverer.
func NewOrder(
	id kernel.UUID,
	number string,
	clientID kernel.UUID,
	storeID kernel.UUID,
	address DeliveryAddress,
	totalAmount float64,
	deliveryFee float64,
	paymentMethod kernel.PaymentMethod,
	now time.Time,
) (*Order, error) {
	return RestoreOrder(Snapshot{
		ID:            id,
		Number:        number,
		ClientID:      clientID,
		StoreID:       storeID,
		Status:        Pending,
		TotalAmount:   totalAmount,
		DeliveryFee:   deliveryFee,
		PaymentMethod: paymentMethod,
		PaymentStatus: PaymentStatusPending,
		Address:       address,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setParty("client", s.ClientID, &o.clientID),
		o.setParty("store", s.StoreID, &o.storeID),
		o.setStatus(s.Status, s.DelivererID),
		o.setAmounts(s.TotalAmount, s.DeliveryFee),
		o.setPayment(s.PaymentMethod, s.PaymentStatus),
		o.setAddress(s.Address),
	); err != nil {
		return nil, err
	}

	o.notes = s.Notes
	o.createdAt = s.CreatedAt
	o.updatedAt = s.UpdatedAt
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                     { return o.id }
func (o *Order) Number() string                      { return o.number }
func (o *Order) ClientID() kernel.UUID               { return o.clientID }
func (o *Order) StoreID() kernel.UUID                { return o.storeID }
func (o *Order) Status() Status                      { return o.status }
func (o *Order) TotalAmount() float64                { return o.totalAmount }
func (o *Order) DeliveryFee() float64                { return o.deliveryFee }
func (o *Order) PaymentMethod() kernel.PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus        { return o.paymentStatus }
func (o *Order) Address() DeliveryAddress            { return o.address }
func (o *Order) Notes() string                       { return o.notes }
func (o *Order) CreatedAt() time.Time                { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                { return o.updatedAt }
func (o *Order) Destination() kernel.Location        { return o.address.Location() }

// Deliverer returns the assigned deliverer, or nil.
func (o *Order) Deliverer() *kernel.UUID {
	if o.delivererID == nil {
		return nil
	}
	id := *o.delivererID
	return &id
}

// Transition moves the order to status to on behalf of actor.
//
// Rules, checked in order:
//   - clients (and unknown roles) are forbidden outright
//   - a store may only act on its own orders, a deliverer only on orders assigned to it
//   - (actor.Role, current status) → to must be in AllowedTransitions
//   - delivering and delivered require an assigned deliverer
//
// On success status and updatedAt change together. Cancelling releases the deliverer; the
// recorded event still names it. Admin transitions append a timestamped audit entry with
// reason to the notes.
// A failed transition leaves the order untouched.
func (o *Order) Transition(actor kernel.Actor, to Status, reason string, now time.Time) error {
	if !hasTransitionRights(actor.Role) {
		return errs.NewActionIsForbiddenError(actor.Role.String(), "change order status")
	}
	if err := o.checkOwnership(actor); err != nil {
		return err
	}
	if !CanTransition(actor.Role, o.status, to) {
		return errs.NewTransitionIsInvalidError(o.status.String(), to.String(), actor.Role.String())
	}
	assigned := o.Deliverer()
	if err := to.ValidateCanHaveDeliverer(assigned != nil && to != Cancelled); err != nil {
		return errs.NewStateIsInvalidErrorWithCause("order", o.status, err)
	}

	from := o.status
	o.status = to
	o.updatedAt = now
	if to == Cancelled {
		o.delivererID = nil
	}
	if actor.IsAdmin() {
		entry := fmt.Sprintf("Status changed by admin: %s → %s. Reason: %s", from, to, reasonOrDefault(reason))
		if to == Cancelled && assigned != nil {
			entry += fmt.Sprintf(". Released deliverer: %s", assigned)
		}
		o.appendNote(now, entry)
	}
	o.record(from, actor.Role, assigned, now)
	return nil
}

// Claim binds the order to delivererID and starts delivery (ready → delivering).
// The store enforces the same precondition atomically; this method rejects
// claims that are already known to be stale.
func (o *Order) Claim(delivererID kernel.UUID, now time.Time) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}
	if o.delivererID != nil {
		return errs.NewObjectIsAlreadyAssignedError("order", o.id.String())
	}
	if o.status != Ready {
		return errs.NewStateIsInvalidError("order", o.status)
	}

	o.delivererID = &delivererID
	o.status = Delivering
	o.updatedAt = now
	o.record(Ready, kernel.RoleDeliverer, o.Deliverer(), now)
	return nil
}

// Reassign is the admin escape hatch: it overwrites the assignment while the order is
// accepted, preparing or ready, and appends an audit entry naming the previous assignee.
func (o *Order) Reassign(delivererID kernel.UUID, reason string, now time.Time) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}
	if !o.status.IsReassignable() {
		return errs.NewStateIsInvalidError("order", o.status)
	}
	if o.delivererID != nil && o.delivererID.IsEqual(delivererID) {
		return errs.NewValueIsInvalidErrorWithCause("deliverer",
			fmt.Errorf("%s is already assigned to order %s", delivererID, o.number))
	}

	previous := "none"
	if o.delivererID != nil {
		previous = o.delivererID.String()
	}

	o.delivererID = &delivererID
	o.updatedAt = now
	o.appendNote(now, fmt.Sprintf("Order reassigned by admin. Previous deliverer: %s. New deliverer: %s. Reason: %s",
		previous, delivererID, reasonOrDefault(reason)))
	return nil
}

// PullEvents returns the status changes recorded since the last call and clears them.
func (o *Order) PullEvents() []StatusChanged {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) checkOwnership(actor kernel.Actor) error {
	switch actor.Role { //nolint:exhaustive // admins act on any order, clients were rejected earlier
	case kernel.RoleStore:
		if !o.storeID.IsEqual(actor.ID) {
			return errs.NewActionIsForbiddenError(actor.Role.String(), "change orders of another store")
		}
	case kernel.RoleDeliverer:
		if o.delivererID == nil || !o.delivererID.IsEqual(actor.ID) {
			return errs.NewActionIsForbiddenError(actor.Role.String(), "change orders assigned to someone else")
		}
	}
	return nil
}

func (o *Order) appendNote(now time.Time, entry string) {
	line := fmt.Sprintf("[%s] %s", now.Format(noteTimeLayout), entry)
	if o.notes == "" {
		o.notes = line
		return
	}
	o.notes = o.notes + noteSeparator + line
}

func (o *Order) record(from Status, role kernel.Role, delivererID *kernel.UUID, now time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:     o.id,
		OrderNumber: o.number,
		StoreID:     o.storeID,
		ClientID:    o.clientID,
		DelivererID: delivererID,
		From:        from,
		To:          o.status,
		Role:        role,
		OccurredAt:  now,
	})
}

func reasonOrDefault(reason string) string {
	if strings.TrimSpace(reason) == "" {
		return "not informed"
	}
	return reason
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	if len(number) > 20 {
		return errs.NewValueIsOutOfRangeError("order number length", len(number), 1, 20)
	}
	o.number = number
	return nil
}

func (o *Order) setParty(name string, id kernel.UUID, target *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*target = id
	return nil
}

func (o *Order) setStatus(status Status, delivererID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if delivererID != nil {
		if err := delivererID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveDeliverer(delivererID != nil); err != nil {
		return err
	}
	o.status = status
	if delivererID != nil {
		id := *delivererID
		o.delivererID = &id
	}
	return nil
}

func (o *Order) setAmounts(totalAmount, deliveryFee float64) error {
	var errList []error
	if totalAmount < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("%.2f is negative", totalAmount)))
	}
	if deliveryFee < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			fmt.Errorf("%.2f is negative", deliveryFee)))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	o.totalAmount = totalAmount
	o.deliveryFee = deliveryFee
	return nil
}

func (o *Order) setPayment(method kernel.PaymentMethod, status PaymentStatus) error {
	if err := errors.Join(method.Validate(), status.Validate()); err != nil {
		return err
	}
	o.paymentMethod = method
	o.paymentStatus = status
	return nil
}

func (o *Order) setAddress(address DeliveryAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}
