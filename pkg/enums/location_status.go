package enums

import "fmt"

// LocationStatus describes the allowed operational states for a location.
type LocationStatus string

const (
	LocationStatusOperational LocationStatus = "OPERATIONAL"
	LocationStatusMaintenance LocationStatus = "MAINTENANCE"
	LocationStatusFull        LocationStatus = "FULL"
)

var validLocationStatuses = []LocationStatus{
	LocationStatusOperational,
	LocationStatusMaintenance,
	LocationStatusFull,
}

// IsValid reports whether the value matches the canonical location status enum.
func (s LocationStatus) IsValid() bool {
	for _, candidate := range validLocationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLocationStatus converts the raw string to LocationStatus.
func ParseLocationStatus(value string) (LocationStatus, error) {
	for _, candidate := range validLocationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid location status %q", value)
}
