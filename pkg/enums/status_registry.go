package enums

// StatusDisplay carries the presentation metadata for a status key.
// The label doubles as the workflow stage name recorded in order history.
type StatusDisplay struct {
	Label     string `json:"label"`
	ClassName string `json:"className"`
}

var statusRegistry = map[string]StatusDisplay{
	string(StockStatusInStock):  {Label: "In Stock", ClassName: "status-IN_STOCK"},
	string(StockStatusLowStock): {Label: "Low Stock", ClassName: "status-LOW_STOCK"},
	string(StockStatusExpired):  {Label: "Expired", ClassName: "status-EXPIRED"},
	string(StockStatusOnOrder):  {Label: "On Order", ClassName: "status-ON_ORDER"},
	string(StockStatusArchived): {Label: "Archived", ClassName: "status-SECONDARY"},

	string(LocationStatusOperational): {Label: "Operational", ClassName: "status-OPERATIONAL"},
	string(LocationStatusMaintenance): {Label: "Under Maintenance", ClassName: "status-MAINTENANCE"},
	string(LocationStatusFull):        {Label: "Full", ClassName: "status-FULL"},

	string(OrderStatusPendingReview): {Label: "Pending Review", ClassName: "status-PENDING_REVIEW"},
	string(OrderStatusApproved):      {Label: "Approved", ClassName: "status-APPROVED"},
	string(OrderStatusRejected):      {Label: "Rejected", ClassName: "status-REJECTED"},
	string(OrderStatusOrdered):       {Label: "Ordered", ClassName: "status-ORDERED"},
	string(OrderStatusReceived):      {Label: "Received", ClassName: "status-RECEIVED"},
}

// DisplayFor resolves the presentation metadata for a raw status key.
// Unknown keys fall back to an "Unknown" label rather than failing.
func DisplayFor(status string) StatusDisplay {
	if display, ok := statusRegistry[status]; ok {
		return display
	}
	return StatusDisplay{Label: "Unknown", ClassName: ""}
}

// LabelFor is shorthand for DisplayFor(status).Label.
func LabelFor(status string) string {
	return DisplayFor(status).Label
}
