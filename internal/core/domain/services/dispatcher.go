package services

import (
	"time"

	"marketplace/internal/core/domain/model/deliverer"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/pkg/errs"
)

// Dispatcher is a domain service that binds jobs (orders and delivery requests) to deliverers.
//
// Key responsibilities:
//   - Checking deliverer eligibility before any binding
//   - Delegating state checks to the job aggregates
//   - Handling the admin reassignment escape hatch
//
// Business rules:
//   - Only online AND approved deliverers may claim
//   - Orders are claimable only while ready and unassigned
//   - Delivery requests are claimable only while pending and unassigned
//   - Reassignment targets must be approved; they may be offline
//
// The in-memory checks here are not enough on their own: two deliverers can both pass them
// for the same job. The repositories persist the claim with a conditional write so only
// the first committed claim wins.
//
// Example usage:
//
//	dispatcher := services.NewDispatcher()
//	if err := dispatcher.ClaimOrder(o, d, time.Now()); err != nil {
//	    // NotEligible, StateIsInvalid or ObjectIsAlreadyAssigned
//	}
//	// persist with OrderRepository.Claim
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// ClaimOrder binds a ready order to d and moves it to delivering.
//
// Parameters:
//   - o: the order to claim (must be valid)
//   - d: the claiming deliverer (must be eligible)
//   - now: the claim time
//
// Returns:
//   - error: ObjectIsNotEligible, StateIsInvalid or ObjectIsAlreadyAssigned; the order is untouched on error
func (s Dispatcher) ClaimOrder(o *order.Order, d *deliverer.Deliverer, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.ValidateEligible(); err != nil {
		return err
	}
	return o.Claim(d.ID(), now)
}

// ClaimRequest binds a pending delivery request to d and moves it to accepted.
func (s Dispatcher) ClaimRequest(r *request.DeliveryRequest, d *deliverer.Deliverer, now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := d.ValidateEligible(); err != nil {
		return err
	}
	return r.Claim(d.ID(), now)
}

// Reassign moves an order in accepted, preparing or ready to another deliverer.
//
// Parameters:
//   - o: the order to reassign
//   - d: the new deliverer (must be approved)
//   - reason: free text recorded in the audit note
//
// Returns:
//   - error: ObjectIsNotEligible if d is not approved, StateIsInvalid if the order status forbids it
func (s Dispatcher) Reassign(o *order.Order, d *deliverer.Deliverer, reason string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsApproved() {
		return errs.NewObjectIsNotEligibleError("deliverer", d.ID().String(), deliverer.ErrDelivererIsNotApproved.Error())
	}
	return o.Reassign(d.ID(), reason, now)
}
