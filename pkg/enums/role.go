package enums

import "fmt"

// Role identifies one of the closed set of personas the session can act as.
type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleStoreManager    Role = "STORE_MANAGER"
	RoleProcurementTeam Role = "PROCUREMENT_TEAM"
	RoleWarehouseStaff  Role = "WAREHOUSE_STAFF"
	RoleOperationsTeam  Role = "OPERATIONS_TEAM"
)

var validRoles = []Role{
	RoleAdmin,
	RoleStoreManager,
	RoleProcurementTeam,
	RoleWarehouseStaff,
	RoleOperationsTeam,
}

// IsValid reports whether the value matches the canonical role enum.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts the raw string to Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// Roles returns the canonical role list in declaration order.
func Roles() []Role {
	out := make([]Role, len(validRoles))
	copy(out, validRoles)
	return out
}
