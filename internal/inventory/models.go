package inventory

import (
	"time"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

// ExpiryNotApplicable is the sentinel for items without an expiry date.
const ExpiryNotApplicable = "N/A"

// RelatedDoc links a stock item to an external document.
type RelatedDoc struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AuditEntry is one append-only line of a stock item's audit log.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
}

type StockItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	SKU         string            `json:"sku"`
	Quantity    int               `json:"quantity"`
	LocationID  string            `json:"locationId,omitempty"`
	ExpiryDate  string            `json:"expiryDate"`
	Status      enums.StockStatus `json:"status"`
	LastUpdated time.Time         `json:"lastUpdated"`
	Supplier    string            `json:"supplier"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	RelatedDocs []RelatedDoc      `json:"relatedDocs"`
	AuditLog    []AuditEntry      `json:"auditLog"`
}

type Location struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Address           string               `json:"address"`
	Capacity          int                  `json:"capacity"`
	CurrentStockCount int                  `json:"currentStockCount"`
	Status            enums.LocationStatus `json:"status"`
	LastUpdated       time.Time            `json:"lastUpdated"`
	ImageURL          string               `json:"imageUrl,omitempty"`
}

// WorkflowEntry is one append-only line of an order's workflow history.
type WorkflowEntry struct {
	Stage     string    `json:"stage"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

type Order struct {
	ID              string            `json:"id"`
	ItemID          string            `json:"itemId"`
	ItemName        string            `json:"itemName"`
	Quantity        int               `json:"quantity"`
	Status          enums.OrderStatus `json:"status"`
	RequestedBy     string            `json:"requestedBy"`
	ApprovedBy      string            `json:"approvedBy,omitempty"`
	OrderDate       string            `json:"orderDate"`
	ETA             string            `json:"eta"`
	SLADueDate      time.Time         `json:"slaDueDate"`
	WorkflowHistory []WorkflowEntry   `json:"workflowHistory"`
}

// SLABreached reports whether the order is past its due date while still
// in a non-terminal, non-rejected state. Derived on read, never stored.
func (o *Order) SLABreached(now time.Time) bool {
	if o.Status.IsTerminal() {
		return false
	}
	return now.After(o.SLADueDate)
}

type User struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Role  enums.Role `json:"role"`
	Email string     `json:"email"`
}
