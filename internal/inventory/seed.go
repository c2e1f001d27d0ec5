package inventory

import (
	"time"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

// NewSeededState returns a state pre-populated with the demo fixtures.
func NewSeededState() *State {
	return &State{
		Users:      seedUsers(),
		Locations:  seedLocations(),
		StockItems: seedStockItems(),
		Orders:     seedOrders(),
	}
}

func seedUsers() []User {
	return []User{
		{ID: "usr-1", Name: "Alice Admin", Role: enums.RoleAdmin, Email: "alice@stockpulse.com"},
		{ID: "usr-2", Name: "Bob Manager", Role: enums.RoleStoreManager, Email: "bob@stockpulse.com"},
		{ID: "usr-3", Name: "Carol Procurement", Role: enums.RoleProcurementTeam, Email: "carol@stockpulse.com"},
		{ID: "usr-4", Name: "David Warehouse", Role: enums.RoleWarehouseStaff, Email: "david@stockpulse.com"},
	}
}

func seedLocations() []*Location {
	return []*Location{
		{
			ID: "loc-1", Name: "Central Warehouse A", Address: "123 Main St, Anytown", Capacity: 10000,
			CurrentStockCount: 7500, Status: enums.LocationStatusOperational, LastUpdated: ts("2023-10-26T10:00:00Z"),
			ImageURL: "https://via.placeholder.com/150/007bff/ffffff?text=WH_A",
		},
		{
			ID: "loc-2", Name: "Retail Store B Backroom", Address: "456 Oak Ave, Anytown", Capacity: 2000,
			CurrentStockCount: 1900, Status: enums.LocationStatusOperational, LastUpdated: ts("2023-10-26T11:30:00Z"),
			ImageURL: "https://via.placeholder.com/150/6c757d/ffffff?text=Store_B",
		},
		{
			ID: "loc-3", Name: "Distribution Center C", Address: "789 Pine Ln, Othercity", Capacity: 15000,
			CurrentStockCount: 14900, Status: enums.LocationStatusFull, LastUpdated: ts("2023-10-26T09:00:00Z"),
			ImageURL: "https://via.placeholder.com/150/28a745/ffffff?text=DC_C",
		},
		{
			ID: "loc-4", Name: "Temp Storage D", Address: "101 Bay Rd, Anytown", Capacity: 5000,
			CurrentStockCount: 200, Status: enums.LocationStatusMaintenance, LastUpdated: ts("2023-10-26T14:00:00Z"),
			ImageURL: "https://via.placeholder.com/150/ffc107/ffffff?text=Temp_D",
		},
	}
}

func seedStockItems() []*StockItem {
	return []*StockItem{
		{
			ID: "stk-1", Name: "Organic Coffee Beans (5kg)", SKU: "CFB-001", Quantity: 250, LocationID: "loc-1",
			ExpiryDate: "2024-12-31", Status: enums.StockStatusInStock, LastUpdated: ts("2023-10-26T15:00:00Z"), Supplier: "BeanCo",
			Description: "Premium organic coffee beans from Brazil.",
			ImageURL:    "https://via.placeholder.com/100/007bff/ffffff?text=Coffee",
			RelatedDocs: []RelatedDoc{{Name: "Supplier Invoice #123", URL: "#"}},
			AuditLog: []AuditEntry{
				{Timestamp: ts("2023-10-20T08:00:00Z"), User: "David Warehouse", Action: "Received 100 units"},
				{Timestamp: ts("2023-10-25T10:00:00Z"), User: "Bob Manager", Action: "Transferred 50 units to loc-2"},
			},
		},
		{
			ID: "stk-2", Name: "Recycled Printer Paper (Box)", SKU: "PAP-002", Quantity: 15, LocationID: "loc-2",
			ExpiryDate: ExpiryNotApplicable, Status: enums.StockStatusLowStock, LastUpdated: ts("2023-10-26T16:00:00Z"), Supplier: "EcoOffice",
			Description: "A box of 10 reams of A4 recycled paper.",
			ImageURL:    "https://via.placeholder.com/100/6c757d/ffffff?text=Paper",
			RelatedDocs: []RelatedDoc{},
			AuditLog: []AuditEntry{
				{Timestamp: ts("2023-10-24T11:00:00Z"), User: "Bob Manager", Action: "Ordered 50 units"},
			},
		},
		{
			ID: "stk-3", Name: "Fresh Milk (1L)", SKU: "MLK-003", Quantity: 50, LocationID: "loc-1",
			ExpiryDate: "2023-11-05", Status: enums.StockStatusExpired, LastUpdated: ts("2023-10-26T17:00:00Z"), Supplier: "DairyFarm",
			Description: "Fresh pasteurized whole milk, 1 liter cartons.",
			ImageURL:    "https://via.placeholder.com/100/dc3545/ffffff?text=Milk",
			RelatedDocs: []RelatedDoc{},
			AuditLog: []AuditEntry{
				{Timestamp: ts("2023-10-26T09:00:00Z"), User: "David Warehouse", Action: "Marked 50 units as EXPIRED"},
			},
		},
		{
			ID: "stk-4", Name: "Safety Goggles (Industrial)", SKU: "SFT-004", Quantity: 100, LocationID: "loc-3",
			ExpiryDate: ExpiryNotApplicable, Status: enums.StockStatusInStock, LastUpdated: ts("2023-10-26T18:00:00Z"), Supplier: "SafeGear",
			Description: "ANSI Z87.1 certified safety goggles.",
			ImageURL:    "https://via.placeholder.com/100/28a745/ffffff?text=Goggles",
			RelatedDocs: []RelatedDoc{},
			AuditLog: []AuditEntry{
				{Timestamp: ts("2023-10-21T14:00:00Z"), User: "David Warehouse", Action: "Received 100 units"},
			},
		},
		{
			ID: "stk-5", Name: "Disposable Gloves (Box of 100)", SKU: "GLV-005", Quantity: 200, LocationID: "loc-1",
			ExpiryDate: "2025-06-30", Status: enums.StockStatusInStock, LastUpdated: ts("2023-10-26T19:00:00Z"), Supplier: "MedSupply",
			Description: "Latex-free nitrile gloves.",
			ImageURL:    "https://via.placeholder.com/100/17a2b8/ffffff?text=Gloves",
			RelatedDocs: []RelatedDoc{},
			AuditLog: []AuditEntry{
				{Timestamp: ts("2023-10-18T09:00:00Z"), User: "David Warehouse", Action: "Received 300 units"},
				{Timestamp: ts("2023-10-22T13:00:00Z"), User: "David Warehouse", Action: "Dispatched 100 units"},
			},
		},
		{
			ID: "stk-6", Name: "Cleaning Solution (5L)", SKU: "CLS-006", Quantity: 30, LocationID: "loc-1",
			ExpiryDate: "2024-03-15", Status: enums.StockStatusLowStock, LastUpdated: ts("2023-10-26T20:00:00Z"), Supplier: "CleanCorp",
			Description: "Multi-purpose industrial cleaning concentrate.",
			ImageURL:    "https://via.placeholder.com/100/ffc107/ffffff?text=Cleaner",
			RelatedDocs: []RelatedDoc{},
			AuditLog:    []AuditEntry{},
		},
	}
}

func seedOrders() []*Order {
	return []*Order{
		{
			ID: "ord-1", ItemID: "stk-2", ItemName: "Recycled Printer Paper (Box)", Quantity: 50,
			Status: enums.OrderStatusPendingReview, RequestedBy: "Bob Manager", OrderDate: "2023-10-25", ETA: "2023-11-05",
			WorkflowHistory: []WorkflowEntry{
				{Stage: "Requested", User: "Bob Manager", Timestamp: ts("2023-10-25T10:00:00Z")},
			},
			SLADueDate: ts("2023-10-27T10:00:00Z"),
		},
		{
			ID: "ord-2", ItemID: "stk-6", ItemName: "Cleaning Solution (5L)", Quantity: 20,
			Status: enums.OrderStatusApproved, RequestedBy: "Carol Procurement", ApprovedBy: "Alice Admin", OrderDate: "2023-10-24", ETA: "2023-11-01",
			WorkflowHistory: []WorkflowEntry{
				{Stage: "Requested", User: "Carol Procurement", Timestamp: ts("2023-10-24T09:00:00Z")},
				{Stage: "Approved", User: "Alice Admin", Timestamp: ts("2023-10-24T11:00:00Z")},
			},
			SLADueDate: ts("2023-10-26T09:00:00Z"),
		},
		{
			ID: "ord-3", ItemID: "stk-1", ItemName: "Organic Coffee Beans (5kg)", Quantity: 100,
			Status: enums.OrderStatusOrdered, RequestedBy: "Bob Manager", ApprovedBy: "Alice Admin", OrderDate: "2023-10-20", ETA: "2023-10-28",
			WorkflowHistory: []WorkflowEntry{
				{Stage: "Requested", User: "Bob Manager", Timestamp: ts("2023-10-20T08:00:00Z")},
				{Stage: "Approved", User: "Alice Admin", Timestamp: ts("2023-10-20T09:00:00Z")},
				{Stage: "Ordered", User: "Carol Procurement", Timestamp: ts("2023-10-20T10:00:00Z")},
			},
			SLADueDate: ts("2023-10-22T08:00:00Z"),
		},
		{
			ID: "ord-4", ItemID: "stk-3", ItemName: "Fresh Milk (1L)", Quantity: 100,
			Status: enums.OrderStatusRejected, RequestedBy: "David Warehouse", ApprovedBy: "Alice Admin", OrderDate: "2023-10-26", ETA: "2023-11-02",
			WorkflowHistory: []WorkflowEntry{
				{Stage: "Requested", User: "David Warehouse", Timestamp: ts("2023-10-26T08:00:00Z")},
				{Stage: "Rejected", User: "Alice Admin", Timestamp: ts("2023-10-26T09:00:00Z"), Reason: "Item already expired in current stock."},
			},
			SLADueDate: ts("2023-10-28T08:00:00Z"),
		},
		{
			ID: "ord-5", ItemID: "stk-5", ItemName: "Disposable Gloves (Box of 100)", Quantity: 50,
			Status: enums.OrderStatusReceived, RequestedBy: "Bob Manager", ApprovedBy: "Alice Admin", OrderDate: "2023-10-15", ETA: "2023-10-20",
			WorkflowHistory: []WorkflowEntry{
				{Stage: "Requested", User: "Bob Manager", Timestamp: ts("2023-10-15T09:00:00Z")},
				{Stage: "Approved", User: "Alice Admin", Timestamp: ts("2023-10-15T10:00:00Z")},
				{Stage: "Ordered", User: "Carol Procurement", Timestamp: ts("2023-10-15T11:00:00Z")},
				{Stage: "Received", User: "David Warehouse", Timestamp: ts("2023-10-20T10:00:00Z")},
			},
			SLADueDate: ts("2023-10-17T09:00:00Z"),
		},
	}
}

func ts(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("inventory: bad fixture timestamp " + value)
	}
	return parsed
}
