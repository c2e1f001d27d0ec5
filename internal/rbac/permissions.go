package rbac

import (
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

// Capability names one boolean permission flag attached to a role.
type Capability string

const (
	CapViewDashboard Capability = "canViewDashboard"
	CapManageStock   Capability = "canManageStock"
	CapViewAuditLogs Capability = "canViewAuditLogs"
	CapApproveOrders Capability = "canApproveOrders"
	CapExportReports Capability = "canExportReports"
	CapViewAllOrders Capability = "canViewAllOrders"
	CapEditUsers     Capability = "canEditUsers"
)

// Permissions is the full capability record for one role. Every role has
// a value for every flag; an absent role reads as all-false.
type Permissions struct {
	CanViewDashboard bool `json:"canViewDashboard"`
	CanManageStock   bool `json:"canManageStock"`
	CanViewAuditLogs bool `json:"canViewAuditLogs"`
	CanApproveOrders bool `json:"canApproveOrders"`
	CanExportReports bool `json:"canExportReports"`
	CanViewAllOrders bool `json:"canViewAllOrders"`
	CanEditUsers     bool `json:"canEditUsers"`
}

var matrix = map[enums.Role]Permissions{
	enums.RoleAdmin: {
		CanViewDashboard: true,
		CanManageStock:   true,
		CanViewAuditLogs: true,
		CanApproveOrders: true,
		CanExportReports: true,
		CanViewAllOrders: true,
		CanEditUsers:     true,
	},
	enums.RoleStoreManager: {
		CanViewDashboard: true,
		CanManageStock:   true,
		CanViewAuditLogs: false,
		CanApproveOrders: true,
		CanExportReports: true,
		CanViewAllOrders: false,
		CanEditUsers:     false,
	},
	enums.RoleProcurementTeam: {
		CanViewDashboard: true,
		CanManageStock:   false,
		CanViewAuditLogs: false,
		CanApproveOrders: true,
		CanExportReports: true,
		CanViewAllOrders: true,
		CanEditUsers:     false,
	},
	enums.RoleWarehouseStaff: {
		CanViewDashboard: true,
		CanManageStock:   true,
		CanViewAuditLogs: false,
		CanApproveOrders: false,
		CanExportReports: false,
		CanViewAllOrders: false,
		CanEditUsers:     false,
	},
	enums.RoleOperationsTeam: {
		CanViewDashboard: true,
		CanManageStock:   true,
		CanViewAuditLogs: true,
		CanApproveOrders: false,
		CanExportReports: true,
		CanViewAllOrders: false,
		CanEditUsers:     false,
	},
}

// PermissionsFor returns the capability record for a role. Unknown roles
// get the zero record, never an error.
func PermissionsFor(role enums.Role) Permissions {
	return matrix[role]
}

// HasCapability is a pure, total lookup: unknown role or unknown
// capability returns false.
func HasCapability(role enums.Role, capability Capability) bool {
	perms := matrix[role]
	switch capability {
	case CapViewDashboard:
		return perms.CanViewDashboard
	case CapManageStock:
		return perms.CanManageStock
	case CapViewAuditLogs:
		return perms.CanViewAuditLogs
	case CapApproveOrders:
		return perms.CanApproveOrders
	case CapExportReports:
		return perms.CanExportReports
	case CapViewAllOrders:
		return perms.CanViewAllOrders
	case CapEditUsers:
		return perms.CanEditUsers
	default:
		return false
	}
}

// Capabilities returns the canonical capability list in declaration order.
func Capabilities() []Capability {
	return []Capability{
		CapViewDashboard,
		CapManageStock,
		CapViewAuditLogs,
		CapApproveOrders,
		CapExportReports,
		CapViewAllOrders,
		CapEditUsers,
	}
}
