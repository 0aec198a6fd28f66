package models

import "time"

// ApplicationStatus enumerates the scholarship application lifecycle.
type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application tracks one user's application to a scholarship. Ids grow
// monotonically within a session; ScholarshipID is not enforced referentially,
// so dangling references are tolerated and filtered by callers.
type Application struct {
	ID            int               `json:"id"`
	ScholarshipID int               `json:"scholarship_id"`
	Status        ApplicationStatus `json:"status"`
	AppliedDate   time.Time         `json:"applied_date"`
	DecisionDate  *time.Time        `json:"decision_date,omitempty"`
}
