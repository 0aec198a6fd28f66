package userstate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
)

func TestStreakFirstActivityStartsAtOne(t *testing.T) {
	store, _, _ := testStore(t)

	store.UpdateStreak(models.ActivityProfileUpdate, "Updated profile picture")

	streak := store.StreakData()
	require.Equal(t, 1, streak.CurrentStreak)
	require.Equal(t, 1, streak.LongestStreak)
	require.Len(t, streak.ActivityDates, 1)
	require.Len(t, streak.Activities, 1)
	require.Equal(t, models.ActivityProfileUpdate, streak.Activities[0].Type)
}

func TestStreakSameDayActivitiesCountOnce(t *testing.T) {
	store, _, clock := testStore(t)

	for i := 0; i < 4; i++ {
		store.UpdateStreak(models.ActivityTopicAdded, fmt.Sprintf("Added topic %d", i))
		clock.Advance(30 * time.Minute)
	}

	streak := store.StreakData()
	require.Equal(t, 1, streak.CurrentStreak)
	require.Len(t, streak.ActivityDates, 1)
	require.Len(t, streak.Activities, 4, "every call must land in the activity log")
}

func TestStreakConsecutiveDaysIncrement(t *testing.T) {
	store, _, clock := testStore(t)

	for day := 0; day < 3; day++ {
		store.UpdateStreak(models.ActivityTopicAdded, "daily check-in")
		clock.Advance(24 * time.Hour)
	}

	streak := store.StreakData()
	require.Equal(t, 3, streak.CurrentStreak)
	require.Equal(t, 3, streak.LongestStreak)
	require.Len(t, streak.ActivityDates, 3)
}

func TestStreakGapResetsCurrentKeepsLongest(t *testing.T) {
	store, _, clock := testStore(t)

	for day := 0; day < 4; day++ {
		store.UpdateStreak(models.ActivityTopicAdded, "daily check-in")
		clock.Advance(24 * time.Hour)
	}

	// Skip two days; the chain is broken.
	clock.Advance(48 * time.Hour)
	store.UpdateStreak(models.ActivityTopicAdded, "back again")

	streak := store.StreakData()
	require.Equal(t, 1, streak.CurrentStreak)
	require.Equal(t, 4, streak.LongestStreak)
}

func TestStreakMilestoneNotificationOnFifthDay(t *testing.T) {
	store, _, clock := testStore(t)

	for day := 0; day < 5; day++ {
		store.UpdateStreak(models.ActivityTopicAdded, "daily check-in")
		if day < 4 {
			clock.Advance(24 * time.Hour)
		}
	}

	notifications := store.Notifications()
	require.Len(t, notifications, 1)
	require.Equal(t, "5-Day Streak!", notifications[0].Title)
	require.Equal(t, models.NotificationSuccess, notifications[0].Type)

	// A second activity the same day must not celebrate again.
	store.UpdateStreak(models.ActivityTopicAdded, "same-day extra")
	require.Len(t, store.Notifications(), 1)
}

func TestStreakActivityDatesStayUnique(t *testing.T) {
	store, _, clock := testStore(t)

	store.UpdateStreak(models.ActivityMentorInteraction, "Viewed mentor profile: Dr. Ada")
	clock.Advance(2 * time.Hour)
	store.UpdateStreak(models.ActivityApplicationSubmitted, "Submitted application: STEM Grant")

	streak := store.StreakData()
	require.Len(t, streak.ActivityDates, 1)
	require.Equal(t, models.DayKey(clock.Now()), streak.ActivityDates[0])
}
