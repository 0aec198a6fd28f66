package models

import "time"

// Eligibility restricts who can apply for a scholarship. Empty slices mean
// no restriction. The country list may carry the sentinel value "All".
type Eligibility struct {
	EducationLevels []string `json:"education_levels,omitempty"`
	Countries       []string `json:"countries,omitempty"`
}

// Scholarship is a single catalog or AI-generated scholarship record.
// Catalog entries are immutable; generated entries carry IsAIGenerated and an
// id from the synthetic band so they never collide with catalog ids.
type Scholarship struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Provider    string `json:"provider"`
	Amount      string `json:"amount"`
	Deadline    string `json:"deadline"`
	Category    string `json:"category"`
	Description string `json:"description"`

	Eligibility *Eligibility `json:"eligibility,omitempty"`
	Keywords    []string     `json:"keywords,omitempty"`

	IsAIGenerated bool `json:"is_ai_generated,omitempty"`
	IsPremium     bool `json:"is_premium,omitempty"`

	// SourceRef is a UUID fingerprint assigned to generated records so copies
	// that leave the session remain globally distinguishable.
	SourceRef string `json:"source_ref,omitempty"`
}

// SavedScholarship records a bookmarked scholarship. The set is keyed by
// ScholarshipID; save and unsave are idempotent.
type SavedScholarship struct {
	ScholarshipID int       `json:"scholarship_id"`
	SavedAt       time.Time `json:"saved_at"`
}
