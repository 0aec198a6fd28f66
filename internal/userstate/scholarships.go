package userstate

import (
	"fmt"

	"github.com/empowerher/empowerher/internal/models"
)

// SaveScholarship bookmarks a scholarship. Saving an already-saved id is a
// no-op; only the first save emits a notification. Reports whether the save
// changed anything.
func (s *Store) SaveScholarship(scholarshipID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isSavedLocked(scholarshipID) {
		return false
	}

	s.state.SavedScholarships = append(s.state.SavedScholarships, models.SavedScholarship{
		ScholarshipID: scholarshipID,
		SavedAt:       s.now(),
	})
	s.addNotificationLocked(
		"Scholarship Saved",
		"The scholarship was added to your saved list.",
		models.NotificationSuccess,
		"/scholarships/saved",
	)

	s.persistLocked()
	return true
}

// UnsaveScholarship removes a bookmark; unknown ids are a silent no-op.
func (s *Store) UnsaveScholarship(scholarshipID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.SavedScholarships[:0]
	removed := false
	for _, saved := range s.state.SavedScholarships {
		if saved.ScholarshipID == scholarshipID {
			removed = true
			continue
		}
		kept = append(kept, saved)
	}
	if !removed {
		return
	}

	s.state.SavedScholarships = kept
	s.persistLocked()
}

// IsSaved reports set membership for a scholarship id.
func (s *Store) IsSaved(scholarshipID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSavedLocked(scholarshipID)
}

// SavedScholarships returns a copy of the bookmark set.
func (s *Store) SavedScholarships() []models.SavedScholarship {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavedScholarship(nil), s.state.SavedScholarships...)
}

func (s *Store) isSavedLocked(scholarshipID int) bool {
	for _, saved := range s.state.SavedScholarships {
		if saved.ScholarshipID == scholarshipID {
			return true
		}
	}
	return false
}

// SetAIScholarships caches engine output for the current profile state so
// recommendations are not regenerated nondeterministically on every read.
func (s *Store) SetAIScholarships(scholarships []models.Scholarship) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.AIScholarships = append([]models.Scholarship(nil), scholarships...)
	s.state.RecommendationKey = recommendationFingerprint(s.state.Profile)
	s.persistLocked()
}

// AIScholarships returns the cached recommendations and whether they are
// still fresh for the current profile state.
func (s *Store) AIScholarships() ([]models.Scholarship, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := len(s.state.AIScholarships) > 0 &&
		s.state.RecommendationKey == recommendationFingerprint(s.state.Profile)
	return append([]models.Scholarship(nil), s.state.AIScholarships...), fresh
}

// ConnectMentor records a mentor interaction in the streak ledger.
func (s *Store) ConnectMentor(mentorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordActivityLocked(models.ActivityMentorInteraction,
		fmt.Sprintf("Connected with mentor: %s", mentorName))
	s.addNotificationLocked(
		"Mentor Request Sent",
		fmt.Sprintf("Your connection request was sent to %s.", mentorName),
		models.NotificationSuccess,
		"/mentorship",
	)
	s.persistLocked()
}

// ViewMentor records a mentor profile view in the streak ledger.
func (s *Store) ViewMentor(mentorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordActivityLocked(models.ActivityMentorInteraction,
		fmt.Sprintf("Viewed mentor profile: %s", mentorName))
	s.persistLocked()
}
