package models

import "time"

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is one entry in the newest-first, append-only feed.
// Read is the only mutable field.
type Notification struct {
	ID      int              `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
	Link    string           `json:"link,omitempty"`
}
