package models

import "time"

// ActivityType labels a streak ledger entry.
type ActivityType string

const (
	ActivityProfileUpdate        ActivityType = "profile_update"
	ActivityTopicAdded           ActivityType = "topic_added"
	ActivityMentorInteraction    ActivityType = "mentor_interaction"
	ActivityApplicationSubmitted ActivityType = "application_submitted"
)

// Profile holds everything the platform knows about a user, including the
// engagement streak ledger. It lives inside the serialized session state blob
// and is mutated only through the user state store.
type Profile struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Country        string `json:"country"`
	EducationLevel string `json:"education_level"`
	School         string `json:"school"`
	GraduationYear string `json:"graduation_year"`

	Interests      []string `json:"interests"`
	Skills         []string `json:"skills,omitempty"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profile_picture,omitempty"`

	IsPremium   bool   `json:"is_premium"`
	PremiumPlan string `json:"premium_plan,omitempty"`

	// ProfileCompleted is derived; the store recomputes it on every mutation.
	ProfileCompleted bool `json:"profile_completed"`

	StreakData StreakData `json:"streak_data"`
}

// ProfileUpdate is a partial profile; nil fields are left untouched by the merge.
type ProfileUpdate struct {
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"`
	Country        *string `json:"country,omitempty"`
	EducationLevel *string `json:"education_level,omitempty"`
	School         *string `json:"school,omitempty"`
	GraduationYear *string `json:"graduation_year,omitempty" validate:"omitempty,graduation_year"`

	Interests      *[]string `json:"interests,omitempty"`
	Skills         *[]string `json:"skills,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
}

// StreakData tracks consecutive-day engagement.
//
// Invariants: CurrentStreak <= LongestStreak, and ActivityDates holds at most
// one entry per calendar day.
type StreakData struct {
	LastActive    time.Time        `json:"last_active"`
	CurrentStreak int              `json:"current_streak"`
	LongestStreak int              `json:"longest_streak"`
	ActivityDates []string         `json:"activity_dates"` // day keys, formatted 2006-01-02
	Activities    []StreakActivity `json:"activities"`
}

// StreakActivity is one entry in the append-only activity log.
type StreakActivity struct {
	Date    time.Time    `json:"date"`
	Type    ActivityType `json:"type"`
	Details string       `json:"details,omitempty"`
}

// DayKey normalises a timestamp to day granularity for ActivityDates membership.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// HasActivityOn reports whether the ledger already contains the given calendar day.
func (s StreakData) HasActivityOn(t time.Time) bool {
	key := DayKey(t)
	for _, day := range s.ActivityDates {
		if day == key {
			return true
		}
	}
	return false
}
