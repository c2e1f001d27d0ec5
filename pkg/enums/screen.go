package enums

import "fmt"

// Screen identifies one addressable application view.
type Screen string

const (
	ScreenDashboard       Screen = "DASHBOARD"
	ScreenStockItems      Screen = "STOCK_ITEMS"
	ScreenStockItemDetail Screen = "STOCK_ITEM_DETAIL"
	ScreenLocations       Screen = "LOCATIONS"
	ScreenLocationDetail  Screen = "LOCATION_DETAIL"
	ScreenOrders          Screen = "ORDERS"
	ScreenOrderDetail     Screen = "ORDER_DETAIL"
	ScreenReports         Screen = "REPORTS"
)

var validScreens = []Screen{
	ScreenDashboard,
	ScreenStockItems,
	ScreenStockItemDetail,
	ScreenLocations,
	ScreenLocationDetail,
	ScreenOrders,
	ScreenOrderDetail,
	ScreenReports,
}

// IsValid reports whether the value matches the canonical screen enum.
func (s Screen) IsValid() bool {
	for _, candidate := range validScreens {
		if candidate == s {
			return true
		}
	}
	return false
}

// DetailParam returns the parameter key a detail screen requires to
// identify its record, or "" for list-style screens.
func (s Screen) DetailParam() string {
	switch s {
	case ScreenStockItemDetail:
		return "itemId"
	case ScreenLocationDetail:
		return "locationId"
	case ScreenOrderDetail:
		return "orderId"
	default:
		return ""
	}
}

// ParseScreen converts the raw string to Screen.
func ParseScreen(value string) (Screen, error) {
	for _, candidate := range validScreens {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid screen %q", value)
}
