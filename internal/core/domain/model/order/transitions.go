package order

import (
	"slices"

	"marketplace/internal/core/domain/model/kernel"
)

// AllowedTransitions returns the statuses role may move an order to from the from status.
//
//	store:     pending→{accepted,cancelled}  accepted→{preparing}  preparing→{ready}
//	deliverer: ready→{delivering}            delivering→{delivered}
//	admin:     every active status→{next, cancelled}
//
// Clients have no transitions.
func AllowedTransitions(role kernel.Role, from Status) []Status {
	switch role {
	case kernel.RoleStore:
		switch from { //nolint:exhaustive // remaining states have no store edges
		case Pending:
			return []Status{Accepted, Cancelled}
		case Accepted:
			return []Status{Preparing}
		case Preparing:
			return []Status{Ready}
		}
	case kernel.RoleDeliverer:
		switch from { //nolint:exhaustive // remaining states have no deliverer edges
		case Ready:
			return []Status{Delivering}
		case Delivering:
			return []Status{Delivered}
		}
	case kernel.RoleAdmin:
		if next, ok := nextStatus(from); ok {
			return []Status{next, Cancelled}
		}
	case kernel.RoleClient, kernel.RoleUnknown:
	}
	return nil
}

// CanTransition reports whether (role, from) → to is an edge of the table.
func CanTransition(role kernel.Role, from Status, to Status) bool {
	return slices.Contains(AllowedTransitions(role, from), to)
}

// hasTransitionRights reports whether role may change order status at all.
func hasTransitionRights(role kernel.Role) bool {
	return role == kernel.RoleStore || role == kernel.RoleDeliverer || role == kernel.RoleAdmin
}

func nextStatus(from Status) (Status, bool) {
	switch from { //nolint:exhaustive // terminal and unknown states have no successor
	case Pending:
		return Accepted, true
	case Accepted:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Delivering, true
	case Delivering:
		return Delivered, true
	}
	return Unknown, false
}
