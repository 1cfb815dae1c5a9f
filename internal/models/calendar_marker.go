package models

// Marker statuses as rendered on the calendar. Shift assignments stamp dates
// as scheduled; day-off requests overlay their own request_* status on top.
const (
	MarkerScheduled       = "scheduled"
	MarkerRequestPending  = "request_pending"
	MarkerRequestApproved = "request_approved"
	MarkerRequestRejected = "request_rejected"
	MarkerUnavailable     = "unavailable"
	MarkerAvailable       = "available"
)

// Fixed calendar palette.
const (
	ColorScheduled = "#00adf5"
	ColorPending   = "#FFC107"
	ColorApproved  = "#4CAF50"
	ColorRejected  = "#F44336"
)

// CalendarMarker is the rendering-facing union of shift and day-off state
// for a single date. It is rebuilt on every render pass and never persisted.
type CalendarMarker struct {
	Selected      bool              `json:"selected,omitempty"`
	Marked        bool              `json:"marked,omitempty"`
	SelectedColor string            `json:"selected_color,omitempty"`
	DotColor      string            `json:"dot_color,omitempty"`
	TextColor     string            `json:"text_color,omitempty"`
	Disabled      bool              `json:"disabled,omitempty"`
	Status        string            `json:"status,omitempty"`
	Hours         float64           `json:"hours,omitempty"`
	Jobs          []ShiftAssignment `json:"jobs,omitempty"`
}

// StatusColor maps a day-off request status to its display color. The second
// return is false for unrecognized statuses.
func StatusColor(requestStatus string) (string, bool) {
	switch requestStatus {
	case DayOffPending:
		return ColorPending, true
	case DayOffApproved:
		return ColorApproved, true
	case DayOffRejected:
		return ColorRejected, true
	}
	return "", false
}

// MarkerStatus maps a day-off request status to the calendar marker status.
func MarkerStatus(requestStatus string) (string, bool) {
	switch requestStatus {
	case DayOffPending:
		return MarkerRequestPending, true
	case DayOffApproved:
		return MarkerRequestApproved, true
	case DayOffRejected:
		return MarkerRequestRejected, true
	}
	return "", false
}
