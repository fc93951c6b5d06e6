package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the capability a user was granted by the identity provider.
type Role string

const (
	RoleCreator Role = "creator"
	RoleClipper Role = "clipper"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a textual role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCreator, RoleClipper, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
}

// User is the part of a user profile the ledger needs.
type User struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// Actor is the authenticated caller of an operation. It is only ever built
// from a User loaded server-side.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) Is(role Role) bool { return a.Role == role }
