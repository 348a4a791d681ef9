// Package models defines the data values exchanged between the FeaturePulse
// backend, the API client, and the local store.
package models

// Status is the review/delivery state of a feature request, assigned by the
// project dashboard.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusRejected   Status = "rejected"
)

// AllStatuses lists every known status in dashboard display order.
var AllStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
	StatusRejected,
}

// ParseStatus maps a wire value to a Status. Unknown values fall back to
// StatusPending so that a new status introduced server-side never turns into
// a decode failure on older clients.
func ParseStatus(s string) Status {
	for _, known := range AllStatuses {
		if s == string(known) {
			return known
		}
	}
	return StatusPending
}
