package auth

import "errors"

// Role represents an authorisation tier.
type Role string

const (
	// RoleViewer may read the record and history and force a poll.
	RoleViewer Role = "viewer"

	// RoleOperator may also write parameters to the unit.
	RoleOperator Role = "operator"
)

// ValidRoles lists the roles a token may carry.
var ValidRoles = []Role{RoleViewer, RoleOperator}

// IsValidRole returns true if r is a known role.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Domain errors.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrSecretEmpty  = errors.New("signing secret is empty")
	ErrInvalidRole  = errors.New("invalid role")
)
