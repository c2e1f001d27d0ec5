package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
	pkgerrors "github.com/stockpulse-app/stockpulse-backend/pkg/errors"
)

var (
	admin       = Actor{Role: enums.RoleAdmin, Name: "Alice Admin"}
	procurement = Actor{Role: enums.RoleProcurementTeam, Name: "Carol Procurement"}
	warehouse   = Actor{Role: enums.RoleWarehouseStaff, Name: "David Warehouse"}
	operations  = Actor{Role: enums.RoleOperationsTeam, Name: "System"}
)

func newEngine(t *testing.T) (*Engine, *inventory.State) {
	t.Helper()
	state := inventory.NewSeededState()
	return NewEngine(state), state
}

func TestApprovePendingOrder(t *testing.T) {
	engine, state := newEngine(t)
	now := time.Now()

	order, err := engine.Approve("ord-1", admin, now)
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusApproved, order.Status)
	assert.Equal(t, "Alice Admin", order.ApprovedBy)
	last := order.WorkflowHistory[len(order.WorkflowHistory)-1]
	assert.Equal(t, "Approved", last.Stage)
	assert.Equal(t, now, last.Timestamp)
	assert.Same(t, order, state.Order("ord-1"))
}

func TestApproveRequiresCapability(t *testing.T) {
	engine, state := newEngine(t)

	_, err := engine.Approve("ord-1", warehouse, time.Now())

	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())
	assert.Equal(t, enums.OrderStatusPendingReview, state.Order("ord-1").Status, "guard failure must not mutate")
}

func TestRejectRecordsReasonAndRejectingUser(t *testing.T) {
	engine, _ := newEngine(t)

	order, err := engine.Reject("ord-1", "Budget freeze this quarter.", admin, time.Now())
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusRejected, order.Status)
	assert.Equal(t, "Alice Admin", order.ApprovedBy)
	last := order.WorkflowHistory[len(order.WorkflowHistory)-1]
	assert.Equal(t, "Rejected", last.Stage)
	assert.Equal(t, "Budget freeze this quarter.", last.Reason)
}

func TestMarkOrderedIsProcurementOnly(t *testing.T) {
	engine, _ := newEngine(t)

	// Admin holds canApproveOrders but is not procurement.
	_, err := engine.MarkOrdered("ord-2", admin, time.Now())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	order, err := engine.MarkOrdered("ord-2", procurement, time.Now())
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusOrdered, order.Status)
	assert.Equal(t, "Ordered", order.WorkflowHistory[len(order.WorkflowHistory)-1].Stage)
}

func TestMarkReceivedIncrementsStock(t *testing.T) {
	engine, state := newEngine(t)
	now := time.Now()

	// ord-3: 100 units of stk-1 (currently 250).
	historyBefore := len(state.Order("ord-3").WorkflowHistory)
	order, err := engine.MarkReceived("ord-3", warehouse, now)
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusReceived, order.Status)
	require.Len(t, order.WorkflowHistory, historyBefore+1)
	assert.Equal(t, "Received", order.WorkflowHistory[len(order.WorkflowHistory)-1].Stage)

	item := state.StockItem("stk-1")
	assert.Equal(t, 350, item.Quantity)
	assert.Equal(t, enums.StockStatusInStock, item.Status)
	assert.Equal(t, now, item.LastUpdated)
}

func TestMarkReceivedRevivesNonInStockItem(t *testing.T) {
	engine, state := newEngine(t)

	// Walk a milk restock through the full lifecycle; stk-3 is EXPIRED
	// at quantity 15 before receiving.
	state.StockItem("stk-3").Quantity = 15
	itemID := "stk-3"
	qty := 30
	order := state.SubmitOrder(inventory.OrderForm{ItemID: &itemID, Quantity: &qty}, "Bob Manager", time.Now())

	_, err := engine.Approve(order.ID, admin, time.Now())
	require.NoError(t, err)
	_, err = engine.MarkOrdered(order.ID, procurement, time.Now())
	require.NoError(t, err)
	_, err = engine.MarkReceived(order.ID, warehouse, time.Now())
	require.NoError(t, err)

	item := state.StockItem("stk-3")
	assert.Equal(t, 45, item.Quantity)
	assert.Equal(t, enums.StockStatusInStock, item.Status)
}

func TestMarkReceivedGuardIsCapabilityOrRoleUnion(t *testing.T) {
	// Operations holds canManageStock but no approval capability and
	// neither special role; the union admits it for receiving only.
	engine, _ := newEngine(t)
	order, err := engine.MarkReceived("ord-3", operations, time.Now())
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusReceived, order.Status)

	// Procurement has neither the capability nor a qualifying role.
	engine2, _ := newEngine(t)
	_, err = engine2.MarkReceived("ord-3", procurement, time.Now())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())
}

func TestTerminalOrdersRejectAnyTransition(t *testing.T) {
	engine, _ := newEngine(t)

	for _, attempt := range []func() (*inventory.Order, error){
		func() (*inventory.Order, error) { return engine.Approve("ord-5", admin, time.Now()) },
		func() (*inventory.Order, error) { return engine.Reject("ord-5", "", admin, time.Now()) },
		func() (*inventory.Order, error) { return engine.MarkOrdered("ord-5", procurement, time.Now()) },
		func() (*inventory.Order, error) { return engine.MarkReceived("ord-5", warehouse, time.Now()) },
	} {
		_, err := attempt()
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeInvalidTransition, pkgerrors.As(err).Code())
	}
}

func TestNoSkippingApproval(t *testing.T) {
	engine, _ := newEngine(t)

	// PENDING_REVIEW straight to ORDERED is not in the table.
	_, err := engine.MarkOrdered("ord-1", procurement, time.Now())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidTransition, pkgerrors.As(err).Code())
}

func TestUnknownOrderIsNotFound(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Approve("ord-999", admin, time.Now())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
