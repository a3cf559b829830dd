package request

import (
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an ad-hoc delivery request.
//
//	Pending ──> Accepted ──> PickedUp ──> Delivered
//	   │            │
//	   └──> Cancelled <┘
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	PickedUp
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

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

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedTransitions is the delivery request table:
//
//	deliverer: accepted→{picked_up,cancelled}  picked_up→{delivered}
//	client:    pending→{cancelled}
//	admin:     union of the above
//
// Pending → accepted happens only through Claim.
func AllowedTransitions(role kernel.Role, from Status) []Status {
	switch role {
	case kernel.RoleDeliverer:
		return delivererTransitions(from)
	case kernel.RoleClient:
		if from == Pending {
			return []Status{Cancelled}
		}
	case kernel.RoleAdmin:
		if from == Pending {
			return []Status{Cancelled}
		}
		return delivererTransitions(from)
	case kernel.RoleStore, kernel.RoleUnknown:
	}
	return nil
}

func CanTransition(role kernel.Role, from Status, to Status) bool {
	return slices.Contains(AllowedTransitions(role, from), to)
}

func delivererTransitions(from Status) []Status {
	switch from { //nolint:exhaustive // other states have no deliverer edges
	case Accepted:
		return []Status{PickedUp, Cancelled}
	case PickedUp:
		return []Status{Delivered}
	}
	return nil
}
