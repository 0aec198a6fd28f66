package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserState is the single authoritative representation of a user session.
// The state store serializes the whole struct into one persistence-sink entry
// after every mutation and rehydrates it at session start.
type UserState struct {
	Profile           Profile            `json:"profile"`
	SavedScholarships []SavedScholarship `json:"saved_scholarships"`
	Applications      []Application      `json:"applications"`
	AIScholarships    []Scholarship      `json:"ai_scholarships"`
	Notifications     []Notification     `json:"notifications"`
	IsLoggedIn        bool               `json:"is_logged_in"`

	// RecommendationKey fingerprints the profile fields the matching engine
	// reads, so recommendations are recomputed once per profile state rather
	// than on every request.
	RecommendationKey string `json:"recommendation_key,omitempty"`
}

// StateEntry is the database row backing the persistence sink: one serialized
// state blob per namespaced key.
type StateEntry struct {
	Key       string         `gorm:"primaryKey;size:256"`
	State     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"index"`
	CreatedAt time.Time
}
