package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

func TestHasCapabilityIsTotal(t *testing.T) {
	roles := append(enums.Roles(), enums.Role("GHOST_ROLE"), enums.Role(""))
	caps := append(Capabilities(), Capability("canDoAnything"), Capability(""))

	for _, role := range roles {
		for _, capability := range caps {
			// Must never panic, regardless of input.
			_ = HasCapability(role, capability)
		}
	}
}

func TestUnknownRoleHasNoAccess(t *testing.T) {
	for _, capability := range Capabilities() {
		assert.False(t, HasCapability("GHOST_ROLE", capability), "capability %s", capability)
	}
	assert.Equal(t, Permissions{}, PermissionsFor("GHOST_ROLE"))
}

func TestMatrixMatchesRoleDefinitions(t *testing.T) {
	assert.True(t, HasCapability(enums.RoleAdmin, CapEditUsers))
	assert.True(t, HasCapability(enums.RoleStoreManager, CapApproveOrders))
	assert.False(t, HasCapability(enums.RoleStoreManager, CapViewAllOrders))
	assert.True(t, HasCapability(enums.RoleProcurementTeam, CapViewAllOrders))
	assert.False(t, HasCapability(enums.RoleProcurementTeam, CapManageStock))
	assert.False(t, HasCapability(enums.RoleWarehouseStaff, CapApproveOrders))
	assert.True(t, HasCapability(enums.RoleWarehouseStaff, CapManageStock))
	assert.True(t, HasCapability(enums.RoleOperationsTeam, CapViewAuditLogs))
	assert.False(t, HasCapability(enums.RoleOperationsTeam, CapApproveOrders))
}

func TestEveryRoleCanViewDashboard(t *testing.T) {
	for _, role := range enums.Roles() {
		assert.True(t, HasCapability(role, CapViewDashboard), "role %s", role)
	}
}
