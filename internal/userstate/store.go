// Package userstate holds the authoritative per-session user state: profile,
// saved scholarships, applications, the AI-scholarship cache, notifications
// and the engagement streak ledger. Every mutation recomputes its invariants
// before returning and then writes the whole state blob to the persistence
// sink fire-and-forget; sink failures are logged and never corrupt memory.
package userstate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/storage"
	"github.com/empowerher/empowerher/pkg/logger"
)

// Notifier receives notifications as they are appended to a user's feed.
type Notifier interface {
	NotificationCreated(userID string, notification models.Notification)
}

// Store is the session-scoped state object. It is created by the application
// root per user session and torn down on logout, never shared as a
// process-wide singleton.
type Store struct {
	mu       sync.Mutex
	userID   string
	key      string
	sink     storage.Sink
	now      func() time.Time
	log      *zap.Logger
	notifier Notifier

	state models.UserState
}

// Option customises a Store.
type Option func(*Store)

// WithNow overrides the clock, primarily for streak tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNotifier attaches a realtime notifier for appended notifications.
func WithNotifier(notifier Notifier) Option {
	return func(s *Store) {
		s.notifier = notifier
	}
}

// WithLogger overrides the store logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Store for the given user backed by the supplied sink.
// The state starts at documented defaults; call Hydrate to rehydrate a
// previously persisted session.
func New(userID string, sink storage.Sink, opts ...Option) *Store {
	s := &Store{
		userID: userID,
		key:    storage.StateKey(userID),
		sink:   sink,
		now:    time.Now,
		log:    logger.WithModule("userstate"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = defaultState()
	return s
}

// UserID returns the owning user id.
func (s *Store) UserID() string {
	return s.userID
}

// Hydrate loads the persisted state blob, if any. A missing blob leaves the
// defaults in place and is not an error.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.sink == nil {
		return nil
	}

	blob, found, err := s.sink.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("userstate: load state: %w", err)
	}
	if !found {
		return nil
	}

	var state models.UserState
	if err := json.Unmarshal(blob, &state); err != nil {
		return fmt.Errorf("userstate: decode state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.state.Profile.ProfileCompleted = profileComplete(s.state.Profile)
	return nil
}

// persistLocked serializes the current state into the sink. Failures are
// logged and swallowed: the in-memory mutation has already succeeded and the
// caller must not observe persistence problems.
func (s *Store) persistLocked() {
	if s.sink == nil {
		return
	}

	blob, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error("marshal state", zap.String("user_id", s.userID), zap.Error(err))
		return
	}

	if err := s.sink.Save(context.Background(), s.key, blob); err != nil {
		s.log.Warn("persist state", zap.String("user_id", s.userID), zap.Error(err))
	}
}

// Snapshot returns a deep copy of the full session state.
func (s *Store) Snapshot() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.state.Profile)
}

// IsLoggedIn reports the session flag.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoggedIn
}

// recommendationFingerprint captures the profile fields the matching engine
// reads, so stale AI-scholarship caches can be detected cheaply.
func recommendationFingerprint(profile models.Profile) string {
	parts := make([]string, 0, 2+len(profile.Interests)+len(profile.Skills))
	parts = append(parts, profile.EducationLevel, profile.Country)
	parts = append(parts, profile.Interests...)
	parts = append(parts, profile.Skills...)
	return strings.Join(parts, "|")
}

func cloneState(state models.UserState) models.UserState {
	cpy := state
	cpy.Profile = cloneProfile(state.Profile)
	cpy.SavedScholarships = append([]models.SavedScholarship(nil), state.SavedScholarships...)
	cpy.Applications = append([]models.Application(nil), state.Applications...)
	cpy.AIScholarships = append([]models.Scholarship(nil), state.AIScholarships...)
	cpy.Notifications = append([]models.Notification(nil), state.Notifications...)
	return cpy
}

func cloneProfile(profile models.Profile) models.Profile {
	cpy := profile
	cpy.Interests = append([]string(nil), profile.Interests...)
	cpy.Skills = append([]string(nil), profile.Skills...)
	cpy.StreakData.ActivityDates = append([]string(nil), profile.StreakData.ActivityDates...)
	cpy.StreakData.Activities = append([]models.StreakActivity(nil), profile.StreakData.Activities...)
	return cpy
}
