package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Accepted ──> Preparing ──> Ready ──> Delivering ──> Delivered
//	   │            │            │           │            │
//	   └────────────┴────────────┴───────────┴────────────┴──> Cancelled
//
// Which edge a caller may take depends on its role; see AllowedTransitions.
type Status int

const (
	// Unknown catches uninitialised values and is never persisted.
	Unknown Status = iota
	Pending
	Accepted
	Preparing
	Ready
	Delivering
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Accepted:   "accepted",
		Preparing:  "preparing",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the wire and storage name of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is still moving through the pipeline.
func (s Status) IsActive() bool {
	return s >= Pending && s <= Delivering
}

// IsReassignable reports whether an admin may swap the assigned deliverer.
func (s Status) IsReassignable() bool {
	return s == Accepted || s == Preparing || s == Ready
}

// ValidateCanHaveDeliverer checks the assignment invariant:
// pending and cancelled orders have no deliverer, delivering and delivered orders must
// have one, accepted..ready may carry one after an admin reassignment.
func (s Status) ValidateCanHaveDeliverer(hasDeliverer bool) error {
	if hasDeliverer && (s == Pending || s == Cancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a deliverer", s),
		)
	}

	if !hasDeliverer && (s == Delivering || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no deliverer", s),
		)
	}

	return nil
}
