package auth

// Permission represents a named capability in the gateway.
type Permission string

// Permission constants. Reads are open on the local network, so only
// actions that reach the unit need a permission.
const (
	PermPoll           Permission = "device:poll"
	PermParameterWrite Permission = "parameter:write"
)

// rolePermissions maps each role to its granted permissions.
var rolePermissions = map[Role][]Permission{
	RoleViewer: {
		PermPoll,
	},
	RoleOperator: {
		PermPoll,
		PermParameterWrite,
	},
}

// HasPermission returns true if the given role has the specified permission.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsForRole returns all permissions granted to a role.
// Returns nil for unknown roles.
func PermissionsForRole(role Role) []Permission {
	perms := rolePermissions[role]
	if perms == nil {
		return nil
	}
	result := make([]Permission, len(perms))
	copy(result, perms)
	return result
}
