package userstate

import (
	"fmt"

	"github.com/empowerher/empowerher/internal/models"
)

// StartApplication opens a draft application for a scholarship. Calling it
// again for the same scholarship returns the existing record unchanged.
func (s *Store) StartApplication(scholarshipID int) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findByScholarshipLocked(scholarshipID); existing != nil {
		return *existing
	}

	maxID := 0
	for _, app := range s.state.Applications {
		if app.ID > maxID {
			maxID = app.ID
		}
	}

	app := models.Application{
		ID:            maxID + 1,
		ScholarshipID: scholarshipID,
		Status:        models.ApplicationDraft,
		AppliedDate:   s.now(),
	}
	s.state.Applications = append(s.state.Applications, app)
	s.persistLocked()
	return app
}

// SubmitApplication moves the draft with the given application id to
// submitted, records the engagement activity, and notifies the user. The
// AppliedDate set when the draft was opened is preserved. Submitting an
// unknown id is a silent no-op; resubmitting an already-submitted application
// is too.
func (s *Store) SubmitApplication(applicationID int, scholarshipTitle string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := s.findByIDLocked(applicationID)
	if app == nil || app.Status != models.ApplicationDraft {
		return
	}

	app.Status = models.ApplicationSubmitted

	s.recordActivityLocked(models.ActivityApplicationSubmitted,
		fmt.Sprintf("Submitted application: %s", scholarshipTitle))
	s.addNotificationLocked(
		"Application Submitted",
		fmt.Sprintf("Your application for %s was submitted successfully.", scholarshipTitle),
		models.NotificationSuccess,
		"/applications",
	)
	s.persistLocked()
}

// GetApplicationStatus returns the status for a scholarship and whether an
// application exists at all.
func (s *Store) GetApplicationStatus(scholarshipID int) (models.ApplicationStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app := s.findByScholarshipLocked(scholarshipID); app != nil {
		return app.Status, true
	}
	return "", false
}

// ApplicationByID looks an application up by its own id.
func (s *Store) ApplicationByID(applicationID int) (models.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app := s.findByIDLocked(applicationID); app != nil {
		return *app, true
	}
	return models.Application{}, false
}

// Applications returns a copy of the application list.
func (s *Store) Applications() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Application(nil), s.state.Applications...)
}

func (s *Store) findByScholarshipLocked(scholarshipID int) *models.Application {
	for i := range s.state.Applications {
		if s.state.Applications[i].ScholarshipID == scholarshipID {
			return &s.state.Applications[i]
		}
	}
	return nil
}

func (s *Store) findByIDLocked(applicationID int) *models.Application {
	for i := range s.state.Applications {
		if s.state.Applications[i].ID == applicationID {
			return &s.state.Applications[i]
		}
	}
	return nil
}
