package userstate

import (
	"fmt"

	"github.com/empowerher/empowerher/internal/models"
)

// Login flips the session flag and greets first-time sessions. The welcome
// notification is only added when the feed is empty, so rehydrated sessions
// are not greeted twice.
func (s *Store) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoggedIn = true
	if len(s.state.Notifications) == 0 {
		s.addNotificationLocked(
			"Welcome to EmpowerHer!",
			"Complete your profile to get personalized scholarship recommendations.",
			models.NotificationInfo,
			"/profile",
		)
	}
	s.persistLocked()
}

// Logout tears the session down: all state resets to documented defaults and
// the reset is persisted so a later hydration starts clean.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = defaultState()
	s.persistLocked()
}

// SetPremium upgrades the profile to the named plan and notifies the user.
func (s *Store) SetPremium(plan string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Profile.IsPremium = true
	s.state.Profile.PremiumPlan = plan
	s.addNotificationLocked(
		"Premium Activated",
		fmt.Sprintf("Your %s plan is now active. Enjoy unlimited mentorship access!", plan),
		models.NotificationSuccess,
		"/premium",
	)
	s.persistLocked()
}

// IsPremium reports whether the profile carries an active premium plan.
func (s *Store) IsPremium() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Profile.IsPremium
}
