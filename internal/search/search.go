package search

import (
	"strings"

	"github.com/stockpulse-app/stockpulse-backend/internal/inventory"
	"github.com/stockpulse-app/stockpulse-backend/pkg/enums"
)

// DefaultMinQueryLength is how many characters a query needs before any
// matching runs. Shorter queries return nothing, not everything.
const DefaultMinQueryLength = 3

// Result is one search hit. Type tells the presentation layer which
// detail screen the hit links to.
type Result struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

const (
	ResultTypeStockItem = "Stock Item"
	ResultTypeLocation  = "Location"
	ResultTypeOrder     = "Order"
)

// Index scans the entity collections linearly. There is no ranking:
// results keep source order, stock items before locations before orders.
type Index struct {
	minQueryLength int
}

func NewIndex(minQueryLength int) *Index {
	if minQueryLength <= 0 {
		minQueryLength = DefaultMinQueryLength
	}
	return &Index{minQueryLength: minQueryLength}
}

// Search matches the query case-insensitively as a substring of each
// entity's display name, id and status label. Orders surface under
// their denormalized item name.
func (ix *Index) Search(state *inventory.State, query string) []Result {
	if len(query) < ix.minQueryLength {
		return []Result{}
	}
	needle := strings.ToLower(query)

	results := []Result{}
	for _, item := range state.StockItems {
		if matches(needle, item.Name, item.ID, string(item.Status)) {
			results = append(results, Result{Type: ResultTypeStockItem, ID: item.ID, Name: item.Name, Status: string(item.Status)})
		}
	}
	for _, loc := range state.Locations {
		if matches(needle, loc.Name, loc.ID, string(loc.Status)) {
			results = append(results, Result{Type: ResultTypeLocation, ID: loc.ID, Name: loc.Name, Status: string(loc.Status)})
		}
	}
	for _, order := range state.Orders {
		if matches(needle, order.ItemName, order.ID, string(order.Status)) {
			results = append(results, Result{Type: ResultTypeOrder, ID: order.ID, Name: order.ItemName, Status: string(order.Status)})
		}
	}
	return results
}

func matches(needle, name, id, status string) bool {
	if strings.Contains(strings.ToLower(name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(id), needle) {
		return true
	}
	return status != "" && strings.Contains(strings.ToLower(enums.LabelFor(status)), needle)
}
