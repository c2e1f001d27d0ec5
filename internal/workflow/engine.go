package workflow

import (
	"fmt"
	"time"

	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/internal/rbac"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
)

// Actor is the identity a transition is attributed to.
type Actor struct {
	Role enums.Role
	Name string
}

type guardFunc func(actor Actor, perms rbac.Permissions) bool

type transition struct {
	from  enums.OrderStatus
	to    enums.OrderStatus
	guard guardFunc
}

// The complete transition table. Anything not listed here is an invalid
// transition, full stop. Guards consolidate the role checks that would
// otherwise be repeated at every call site.
var transitions = []transition{
	{
		from:  enums.OrderStatusPendingReview,
		to:    enums.OrderStatusApproved,
		guard: func(_ Actor, perms rbac.Permissions) bool { return perms.CanApproveOrders },
	},
	{
		from:  enums.OrderStatusPendingReview,
		to:    enums.OrderStatusRejected,
		guard: func(_ Actor, perms rbac.Permissions) bool { return perms.CanApproveOrders },
	},
	{
		// Placing the purchase is reserved for procurement, on top of
		// the generic approval capability.
		from: enums.OrderStatusApproved,
		to:   enums.OrderStatusOrdered,
		guard: func(actor Actor, perms rbac.Permissions) bool {
			return perms.CanApproveOrders && actor.Role == enums.RoleProcurementTeam
		},
	},
	{
		// Receiving goods is a capability-or-role union: stock managers
		// by capability, warehouse and store staff by role.
		from: enums.OrderStatusOrdered,
		to:   enums.OrderStatusReceived,
		guard: func(actor Actor, perms rbac.Permissions) bool {
			return perms.CanManageStock ||
				actor.Role == enums.RoleWarehouseStaff ||
				actor.Role == enums.RoleStoreManager
		},
	},
}

// Engine applies order lifecycle transitions against a state container.
type Engine struct {
	state *inventory.State
}

func NewEngine(state *inventory.State) *Engine {
	return &Engine{state: state}
}

// Approve moves a pending order to APPROVED and records the approver.
func (e *Engine) Approve(orderID string, actor Actor, now time.Time) (*inventory.Order, error) {
	return e.apply(orderID, enums.OrderStatusApproved, "", actor, now)
}

// Reject moves a pending order to REJECTED. The optional reason lands on
// the workflow history entry; approvedBy records the rejecting user.
func (e *Engine) Reject(orderID, reason string, actor Actor, now time.Time) (*inventory.Order, error) {
	return e.apply(orderID, enums.OrderStatusRejected, reason, actor, now)
}

// MarkOrdered moves an approved order to ORDERED.
func (e *Engine) MarkOrdered(orderID string, actor Actor, now time.Time) (*inventory.Order, error) {
	return e.apply(orderID, enums.OrderStatusOrdered, "", actor, now)
}

// MarkReceived moves an ordered order to RECEIVED and books the received
// quantity onto the linked stock item.
func (e *Engine) MarkReceived(orderID string, actor Actor, now time.Time) (*inventory.Order, error) {
	return e.apply(orderID, enums.OrderStatusReceived, "", actor, now)
}

func (e *Engine) apply(orderID string, target enums.OrderStatus, reason string, actor Actor, now time.Time) (*inventory.Order, error) {
	order := e.state.Order(orderID)
	if order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	tr := findTransition(order.Status, target)
	if tr == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidTransition,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, target)).
			WithDetails(map[string]string{"from": string(order.Status), "to": string(target)})
	}

	perms := rbac.PermissionsFor(actor.Role)
	if !tr.guard(actor, perms) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden,
			fmt.Sprintf("role %s may not move order to %s", actor.Role, target))
	}

	// Guard passed: the whole transition applies atomically below, no
	// partial mutation on any earlier return.
	if target == enums.OrderStatusReceived {
		e.receiveStock(order, actor, now)
	}
	if target == enums.OrderStatusApproved || target == enums.OrderStatusRejected {
		order.ApprovedBy = actor.Name
	}
	order.Status = target
	order.WorkflowHistory = append(order.WorkflowHistory, inventory.WorkflowEntry{
		Stage:     enums.LabelFor(string(target)),
		User:      actor.Name,
		Timestamp: now,
		Reason:    reason,
	})
	return order, nil
}

// receiveStock increments the linked item by the order quantity and, when
// the item holds any stock, pulls its status back to IN_STOCK.
func (e *Engine) receiveStock(order *inventory.Order, actor Actor, now time.Time) {
	item := e.state.StockItem(order.ItemID)
	if item == nil {
		return
	}
	item.Quantity += order.Quantity
	if item.Quantity > 0 {
		item.Status = enums.StockStatusInStock
	}
	item.LastUpdated = now
	item.AuditLog = append(item.AuditLog, inventory.AuditEntry{
		Timestamp: now,
		User:      actor.Name,
		Action:    fmt.Sprintf("Received %d units", order.Quantity),
	})
}

func findTransition(from, to enums.OrderStatus) *transition {
	for i := range transitions {
		if transitions[i].from == from && transitions[i].to == to {
			return &transitions[i]
		}
	}
	return nil
}
