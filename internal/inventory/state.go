package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

// State owns the in-memory entity collections for one logical session.
// It is not safe for concurrent use on its own; the session container
// serializes access.
type State struct {
	StockItems []*StockItem
	Locations  []*Location
	Orders     []*Order
	Users      []User
}

// NewState returns an empty state container.
func NewState() *State {
	return &State{}
}

// StockItem resolves an item by id, or nil.
func (s *State) StockItem(id string) *StockItem {
	for _, item := range s.StockItems {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Location resolves a location by id, or nil.
func (s *State) Location(id string) *Location {
	for _, loc := range s.Locations {
		if loc.ID == id {
			return loc
		}
	}
	return nil
}

// Order resolves an order by id, or nil.
func (s *State) Order(id string) *Order {
	for _, order := range s.Orders {
		if order.ID == id {
			return order
		}
	}
	return nil
}

// ActorName resolves the display name for the acting role. The demo data
// carries at most one user per role; roles without a user read as
// "System", matching how actions are attributed when nobody is resolvable.
func (s *State) ActorName(role enums.Role) string {
	for _, user := range s.Users {
		if user.Role == role {
			return user.Name
		}
	}
	return "System"
}

// StockItemForm is the submission payload for creating or editing a
// stock item. Nil fields are left untouched on merge.
type StockItemForm struct {
	ID          string
	Name        *string
	SKU         *string
	Quantity    *int
	LocationID  *string
	ExpiryDate  *string
	Status      *enums.StockStatus
	Supplier    *string
	Description *string
	ImageURL    *string
}

// SubmitStockItem upserts a stock item: an existing id gets a shallow
// merge plus a lastUpdated stamp; otherwise a new record is created
// under a fresh collision-free id.
func (s *State) SubmitStockItem(form StockItemForm, now time.Time) *StockItem {
	if existing := s.StockItem(form.ID); existing != nil {
		applyStockItemForm(existing, form)
		existing.LastUpdated = now
		return existing
	}

	item := &StockItem{
		ID:          newID("stk"),
		ExpiryDate:  ExpiryNotApplicable,
		Status:      enums.StockStatusInStock,
		LastUpdated: now,
		RelatedDocs: []RelatedDoc{},
		AuditLog:    []AuditEntry{},
	}
	applyStockItemForm(item, form)
	s.StockItems = append(s.StockItems, item)
	return item
}

func applyStockItemForm(item *StockItem, form StockItemForm) {
	if form.Name != nil {
		item.Name = *form.Name
	}
	if form.SKU != nil {
		item.SKU = *form.SKU
	}
	if form.Quantity != nil {
		item.Quantity = *form.Quantity
	}
	if form.LocationID != nil {
		item.LocationID = *form.LocationID
	}
	if form.ExpiryDate != nil {
		item.ExpiryDate = *form.ExpiryDate
	}
	if form.Status != nil {
		item.Status = *form.Status
	}
	if form.Supplier != nil {
		item.Supplier = *form.Supplier
	}
	if form.Description != nil {
		item.Description = *form.Description
	}
	if form.ImageURL != nil {
		item.ImageURL = *form.ImageURL
	}
}

// LocationForm is the submission payload for creating or editing a location.
type LocationForm struct {
	ID                string
	Name              *string
	Address           *string
	Capacity          *int
	CurrentStockCount *int
	Status            *enums.LocationStatus
	ImageURL          *string
}

// SubmitLocation upserts a location under the same merge/create rules
// as SubmitStockItem.
func (s *State) SubmitLocation(form LocationForm, now time.Time) *Location {
	if existing := s.Location(form.ID); existing != nil {
		applyLocationForm(existing, form)
		existing.LastUpdated = now
		return existing
	}

	loc := &Location{
		ID:          newID("loc"),
		Status:      enums.LocationStatusOperational,
		LastUpdated: now,
	}
	applyLocationForm(loc, form)
	s.Locations = append(s.Locations, loc)
	return loc
}

func applyLocationForm(loc *Location, form LocationForm) {
	if form.Name != nil {
		loc.Name = *form.Name
	}
	if form.Address != nil {
		loc.Address = *form.Address
	}
	if form.Capacity != nil {
		loc.Capacity = *form.Capacity
	}
	if form.CurrentStockCount != nil {
		loc.CurrentStockCount = *form.CurrentStockCount
	}
	if form.Status != nil {
		loc.Status = *form.Status
	}
	if form.ImageURL != nil {
		loc.ImageURL = *form.ImageURL
	}
}

// OrderForm is the submission payload for creating or editing an order.
// There is no Status field: order status only moves through the
// workflow engine.
type OrderForm struct {
	ID         string
	ItemID     *string
	ItemName   *string
	Quantity   *int
	OrderDate  *string
	ETA        *string
	SLADueDate *time.Time
}

// SubmitOrder upserts an order. Edits append an "Updated" workflow entry
// attributed to the actor; creates seed the history with a "Created"
// entry and start the order in PENDING_REVIEW.
func (s *State) SubmitOrder(form OrderForm, actor string, now time.Time) *Order {
	if existing := s.Order(form.ID); existing != nil {
		applyOrderForm(existing, form)
		existing.WorkflowHistory = append(existing.WorkflowHistory, WorkflowEntry{
			Stage:     "Updated",
			User:      actor,
			Timestamp: now,
		})
		return existing
	}

	order := &Order{
		ID:          newID("ord"),
		Status:      enums.OrderStatusPendingReview,
		RequestedBy: actor,
		WorkflowHistory: []WorkflowEntry{{
			Stage:     "Created",
			User:      actor,
			Timestamp: now,
		}},
	}
	applyOrderForm(order, form)
	if order.ItemName == "" {
		if item := s.StockItem(order.ItemID); item != nil {
			order.ItemName = item.Name
		}
	}
	s.Orders = append(s.Orders, order)
	return order
}

func applyOrderForm(order *Order, form OrderForm) {
	if form.ItemID != nil {
		order.ItemID = *form.ItemID
	}
	if form.ItemName != nil {
		order.ItemName = *form.ItemName
	}
	if form.Quantity != nil {
		order.Quantity = *form.Quantity
	}
	if form.OrderDate != nil {
		order.OrderDate = *form.OrderDate
	}
	if form.ETA != nil {
		order.ETA = *form.ETA
	}
	if form.SLADueDate != nil {
		order.SLADueDate = *form.SLADueDate
	}
}

// newID mints a prefixed random identifier. Wall-clock based schemes
// collide for same-instant creates; a uuid does not.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
