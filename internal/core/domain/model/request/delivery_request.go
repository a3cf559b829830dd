package request

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrDeliveryRequestIsNotConstructed = errors.New(
	"DeliveryRequest must be created via NewDeliveryRequest constructor")

// Endpoint is a free-text address with optional coordinates.
type Endpoint struct {
	Address  string
	Location *kernel.Location
}

// Estimate is the price and duration quoted to the client when the request was created.
type Estimate struct {
	Price   float64
	Minutes int
}

// DeliveryRequest is an ad-hoc delivery job outside the catalog. It shares the
// single-assignment discipline of orders but has its own state space.
type DeliveryRequest struct {
	id              kernel.UUID
	clientID        kernel.UUID
	delivererID     *kernel.UUID
	pickup          Endpoint
	dropoff         Endpoint
	itemDescription string
	estimate        Estimate
	paymentMethod   kernel.PaymentMethod
	status          Status
	createdAt       time.Time
	updatedAt       time.Time

	events []StatusChanged

	isConstructed bool
}

type Snapshot struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	DelivererID     *kernel.UUID
	Pickup          Endpoint
	Dropoff         Endpoint
	ItemDescription string
	Estimate        Estimate
	PaymentMethod   kernel.PaymentMethod
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StatusChanged is recorded on every status change of a delivery request.
type StatusChanged struct {
	RequestID   kernel.UUID
	ClientID    kernel.UUID
	DelivererID *kernel.UUID
	From        Status
	To          Status
	Role        kernel.Role
	OccurredAt  time.Time
}

func NewDeliveryRequest(
	id kernel.UUID,
	clientID kernel.UUID,
	pickup Endpoint,
	dropoff Endpoint,
	itemDescription string,
	estimate Estimate,
	paymentMethod kernel.PaymentMethod,
	now time.Time,
) (*DeliveryRequest, error) {
	return RestoreDeliveryRequest(Snapshot{
		ID:              id,
		ClientID:        clientID,
		Pickup:          pickup,
		Dropoff:         dropoff,
		ItemDescription: itemDescription,
		Estimate:        estimate,
		PaymentMethod:   paymentMethod,
		Status:          Pending,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
}

func RestoreDeliveryRequest(s Snapshot) (*DeliveryRequest, error) {
	r := &DeliveryRequest{isConstructed: true}

	if err := errors.Join(
		r.setID(s.ID),
		r.setClient(s.ClientID),
		r.setEndpoints(s.Pickup, s.Dropoff),
		r.setEstimate(s.Estimate),
		s.PaymentMethod.Validate(),
		r.setStatus(s.Status, s.DelivererID),
	); err != nil {
		return nil, err
	}

	r.itemDescription = s.ItemDescription
	r.paymentMethod = s.PaymentMethod
	r.createdAt = s.CreatedAt
	r.updatedAt = s.UpdatedAt
	return r, nil
}

func (r *DeliveryRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDeliveryRequestIsNotConstructed
	}
	return nil
}

func (r *DeliveryRequest) ID() kernel.UUID                     { return r.id }
func (r *DeliveryRequest) ClientID() kernel.UUID               { return r.clientID }
func (r *DeliveryRequest) Pickup() Endpoint                    { return r.pickup }
func (r *DeliveryRequest) Dropoff() Endpoint                   { return r.dropoff }
func (r *DeliveryRequest) ItemDescription() string             { return r.itemDescription }
func (r *DeliveryRequest) Estimate() Estimate                  { return r.estimate }
func (r *DeliveryRequest) PaymentMethod() kernel.PaymentMethod { return r.paymentMethod }
func (r *DeliveryRequest) Status() Status                      { return r.status }
func (r *DeliveryRequest) CreatedAt() time.Time                { return r.createdAt }
func (r *DeliveryRequest) UpdatedAt() time.Time                { return r.updatedAt }

func (r *DeliveryRequest) Deliverer() *kernel.UUID {
	if r.delivererID == nil {
		return nil
	}
	id := *r.delivererID
	return &id
}

// Claim binds a pending, unassigned request to delivererID (pending → accepted).
func (r *DeliveryRequest) Claim(delivererID kernel.UUID, now time.Time) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}
	if r.delivererID != nil {
		return errs.NewObjectIsAlreadyAssignedError("delivery request", r.id.String())
	}
	if r.status != Pending {
		return errs.NewStateIsInvalidError("delivery request", r.status)
	}

	r.delivererID = &delivererID
	r.status = Accepted
	r.updatedAt = now
	r.record(Pending, kernel.RoleDeliverer, now)
	return nil
}

// Transition applies the role table. Deliverers act only on requests assigned to them,
// clients only on their own requests.
func (r *DeliveryRequest) Transition(actor kernel.Actor, to Status, now time.Time) error {
	switch actor.Role { //nolint:exhaustive // admins act on any request
	case kernel.RoleDeliverer:
		if r.delivererID == nil || !r.delivererID.IsEqual(actor.ID) {
			return errs.NewActionIsForbiddenError(actor.Role.String(), "change requests assigned to someone else")
		}
	case kernel.RoleClient:
		if !r.clientID.IsEqual(actor.ID) {
			return errs.NewActionIsForbiddenError(actor.Role.String(), "change requests of another client")
		}
	case kernel.RoleStore, kernel.RoleUnknown:
		return errs.NewActionIsForbiddenError(actor.Role.String(), "change delivery request status")
	}

	if !CanTransition(actor.Role, r.status, to) {
		return errs.NewTransitionIsInvalidError(r.status.String(), to.String(), actor.Role.String())
	}

	from := r.status
	r.status = to
	r.updatedAt = now
	r.record(from, actor.Role, now)
	return nil
}

func (r *DeliveryRequest) PullEvents() []StatusChanged {
	events := r.events
	r.events = nil
	return events
}

func (r *DeliveryRequest) record(from Status, role kernel.Role, now time.Time) {
	r.events = append(r.events, StatusChanged{
		RequestID:   r.id,
		ClientID:    r.clientID,
		DelivererID: r.Deliverer(),
		From:        from,
		To:          r.status,
		Role:        role,
		OccurredAt:  now,
	})
}

func (r *DeliveryRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *DeliveryRequest) setClient(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	r.clientID = id
	return nil
}

func (r *DeliveryRequest) setEndpoints(pickup, dropoff Endpoint) error {
	var errList []error
	if pickup.Address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pickup address"))
	}
	if dropoff.Address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("delivery address"))
	}
	for _, e := range []Endpoint{pickup, dropoff} {
		if e.Location != nil {
			errList = append(errList, e.Location.Validate())
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	r.pickup = pickup
	r.dropoff = dropoff
	return nil
}

func (r *DeliveryRequest) setEstimate(estimate Estimate) error {
	if estimate.Price < 0 || estimate.Minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimate is invalid",
			fmt.Errorf("price %.2f and minutes %d must not be negative", estimate.Price, estimate.Minutes))
	}
	r.estimate = estimate
	return nil
}

func (r *DeliveryRequest) setStatus(status Status, delivererID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if delivererID != nil {
		if err := delivererID.Validate(); err != nil {
			return err
		}
		if status == Pending {
			return errs.NewValueIsInvalidErrorWithCause("status is invalid",
				fmt.Errorf("%s is not a valid status to have a deliverer", status))
		}
		id := *delivererID
		r.delivererID = &id
	} else if status == Accepted || status == PickedUp || status == Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no deliverer", status))
	}
	r.status = status
	return nil
}
