package kernel

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the caller's role as resolved by the identity collaborator.
// It is always passed into core operations explicitly.
type Role int

const (
	RoleUnknown Role = iota
	RoleClient
	RoleStore
	RoleDeliverer
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleClient:    "client",
		RoleStore:     "store",
		RoleDeliverer: "deliverer",
		RoleAdmin:     "admin",
	}
}

// RoleFromString parses the lowercase role name used on the wire and in tokens.
func RoleFromString(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == needle {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Actor is an authenticated caller: the user id together with the role it acts under.
type Actor struct {
	ID   UUID
	Role Role
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
