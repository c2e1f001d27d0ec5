package enums

import "fmt"

// StockStatus describes the allowed lifecycle states for a stock item.
type StockStatus string

const (
	StockStatusInStock  StockStatus = "IN_STOCK"
	StockStatusLowStock StockStatus = "LOW_STOCK"
	StockStatusExpired  StockStatus = "EXPIRED"
	StockStatusOnOrder  StockStatus = "ON_ORDER"
	StockStatusArchived StockStatus = "ARCHIVED"
)

var validStockStatuses = []StockStatus{
	StockStatusInStock,
	StockStatusLowStock,
	StockStatusExpired,
	StockStatusOnOrder,
	StockStatusArchived,
}

// IsValid reports whether the value matches the canonical stock status enum.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts the raw string to StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
