package userstate

import (
	"strings"

	"github.com/empowerher/empowerher/internal/models"
)

// DefaultProfile returns the documented out-of-the-box profile.
func DefaultProfile() models.Profile {
	profile := models.Profile{
		FirstName:      "Maria",
		LastName:       "Gonzalez",
		Email:          "maria.gonzalez@example.com",
		Phone:          "+234 123 456 7890",
		Country:        "Nigeria",
		EducationLevel: "Secondary School",
		School:         "Word of Faith Group of Schools",
		GraduationYear: "2025",
		Interests:      []string{"Computer Science", "Mathematics", "Entrepreneurship"},
		Skills:         []string{"Programming", "Public Speaking", "Leadership"},
		Bio: "I'm an SS 3 student passionate about using technology to solve problems " +
			"in my community. I'm interested in pursuing a degree in Computer Science.",
	}
	profile.ProfileCompleted = profileComplete(profile)
	return profile
}

func defaultState() models.UserState {
	return models.UserState{
		Profile:           DefaultProfile(),
		SavedScholarships: []models.SavedScholarship{},
		Applications:      []models.Application{},
		AIScholarships:    []models.Scholarship{},
		Notifications:     []models.Notification{},
	}
}

// profileEffect is a streak activity derived from a profile mutation. The
// coupling between profile updates and the streak ledger is modelled as an
// explicit effect list so it stays visible and testable on its own.
type profileEffect struct {
	activity models.ActivityType
	details  string
}

// UpdateProfile shallow-merges the partial into the profile, recomputes the
// completion flag, and records at most one streak activity per changed
// trigger field (profile picture, interests).
func (s *Store) UpdateProfile(update models.ProfileUpdate) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state.Profile
	mergeProfile(&s.state.Profile, update)
	s.state.Profile.ProfileCompleted = profileComplete(s.state.Profile)

	for _, effect := range deriveProfileEffects(before, update) {
		s.recordActivityLocked(effect.activity, effect.details)
	}

	s.persistLocked()
	return cloneProfile(s.state.Profile)
}

// CheckProfileCompletion reports whether the profile gates are satisfied:
// every identity and academic field plus the bio non-blank, and at least one
// interest recorded.
func (s *Store) CheckProfileCompletion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return profileComplete(s.state.Profile)
}

func mergeProfile(profile *models.Profile, update models.ProfileUpdate) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&profile.FirstName, update.FirstName)
	setString(&profile.LastName, update.LastName)
	setString(&profile.Email, update.Email)
	setString(&profile.Phone, update.Phone)
	setString(&profile.Country, update.Country)
	setString(&profile.EducationLevel, update.EducationLevel)
	setString(&profile.School, update.School)
	setString(&profile.GraduationYear, update.GraduationYear)
	setString(&profile.Bio, update.Bio)
	setString(&profile.ProfilePicture, update.ProfilePicture)

	if update.Interests != nil {
		profile.Interests = append([]string(nil), (*update.Interests)...)
	}
	if update.Skills != nil {
		profile.Skills = append([]string(nil), (*update.Skills)...)
	}
}

func deriveProfileEffects(before models.Profile, update models.ProfileUpdate) []profileEffect {
	var effects []profileEffect

	if update.ProfilePicture != nil && *update.ProfilePicture != before.ProfilePicture {
		effects = append(effects, profileEffect{
			activity: models.ActivityProfileUpdate,
			details:  "Updated profile picture",
		})
	}

	if update.Interests != nil && !equalStrings(*update.Interests, before.Interests) {
		effects = append(effects, profileEffect{
			activity: models.ActivityTopicAdded,
			details:  "Updated interests",
		})
	}

	return effects
}

func profileComplete(profile models.Profile) bool {
	required := []string{
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.Phone,
		profile.Country,
		profile.EducationLevel,
		profile.School,
		profile.GraduationYear,
		profile.Bio,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return len(profile.Interests) > 0
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
