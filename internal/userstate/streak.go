package userstate

import (
	"fmt"
	"time"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/pkg/metrics"
)

// streakMilestoneInterval is the streak length multiple that earns a
// celebration notification.
const streakMilestoneInterval = 5

// UpdateStreak records a qualifying engagement activity. Only the first
// activity of a calendar day moves the streak counters; every call appends
// to the activity log.
func (s *Store) UpdateStreak(activityType models.ActivityType, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordActivityLocked(activityType, details)
	s.persistLocked()
}

// StreakData returns a copy of the streak ledger.
func (s *Store) StreakData() models.StreakData {
	s.mu.Lock()
	defer s.mu.Unlock()

	streak := s.state.Profile.StreakData
	streak.ActivityDates = append([]string(nil), streak.ActivityDates...)
	streak.Activities = append([]models.StreakActivity(nil), streak.Activities...)
	return streak
}

// recordActivityLocked is the single entry point for streak bookkeeping, so
// two activities landing in the same tick cannot double-count a day.
func (s *Store) recordActivityLocked(activityType models.ActivityType, details string) {
	now := s.now()
	today := dayOf(now)
	streak := &s.state.Profile.StreakData

	firstOfDay := !streak.HasActivityOn(now)
	if firstOfDay {
		yesterday := today.AddDate(0, 0, -1)
		switch last := dayOf(streak.LastActive); {
		case last.Equal(yesterday):
			streak.CurrentStreak++
		case last.Before(yesterday):
			streak.CurrentStreak = 1
		default:
			// last == today without a matching activity date; tolerated,
			// counters stay as they are.
		}

		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.ActivityDates = append(streak.ActivityDates, models.DayKey(now))
	}

	streak.Activities = append(streak.Activities, models.StreakActivity{
		Date:    now,
		Type:    activityType,
		Details: details,
	})
	streak.LastActive = today

	if firstOfDay && streak.CurrentStreak > 0 && streak.CurrentStreak%streakMilestoneInterval == 0 {
		metrics.StreakMilestones.Inc()
		s.addNotificationLocked(
			fmt.Sprintf("%d-Day Streak!", streak.CurrentStreak),
			fmt.Sprintf("You've been active %d days in a row. Keep it up!", streak.CurrentStreak),
			models.NotificationSuccess,
			"/dashboard",
		)
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
