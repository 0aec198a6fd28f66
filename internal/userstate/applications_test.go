package userstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
)

func TestStartApplicationAssignsSequentialIDs(t *testing.T) {
	store, _, _ := testStore(t)

	first := store.StartApplication(42)
	second := store.StartApplication(7)

	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
	require.Equal(t, models.ApplicationDraft, first.Status)
	require.Equal(t, 42, first.ScholarshipID)
}

func TestStartApplicationIsIdempotent(t *testing.T) {
	store, _, _ := testStore(t)

	first := store.StartApplication(42)
	again := store.StartApplication(42)

	require.Equal(t, first.ID, again.ID)
	require.Len(t, store.Applications(), 1)
}

func TestSubmitApplicationLifecycle(t *testing.T) {
	store, _, _ := testStore(t)

	app := store.StartApplication(42)
	store.SubmitApplication(app.ID, "Tech Innovators Grant")

	status, ok := store.GetApplicationStatus(42)
	require.True(t, ok)
	require.Equal(t, models.ApplicationSubmitted, status)

	streak := store.StreakData()
	require.Len(t, streak.Activities, 1)
	require.Equal(t, models.ActivityApplicationSubmitted, streak.Activities[0].Type)

	notifications := store.Notifications()
	require.Len(t, notifications, 1)
	require.Equal(t, "Application Submitted", notifications[0].Title)
}

func TestSubmitKeepsOriginalAppliedDate(t *testing.T) {
	store, _, clock := testStore(t)

	app := store.StartApplication(42)
	started := app.AppliedDate

	clock.Advance(48 * time.Hour)
	store.SubmitApplication(app.ID, "Tech Innovators Grant")

	submitted, ok := store.ApplicationByID(app.ID)
	require.True(t, ok)
	require.Equal(t, models.ApplicationSubmitted, submitted.Status)
	require.Equal(t, started, submitted.AppliedDate)
}

func TestSubmitUnknownIDIsSilent(t *testing.T) {
	store, _, _ := testStore(t)

	store.SubmitApplication(99, "Ghost Grant")

	_, ok := store.ApplicationByID(99)
	require.False(t, ok)
	require.Empty(t, store.Notifications())
	require.Empty(t, store.StreakData().Activities)
}

func TestResubmitIsSilent(t *testing.T) {
	store, _, _ := testStore(t)

	app := store.StartApplication(42)
	store.SubmitApplication(app.ID, "Tech Innovators Grant")
	store.SubmitApplication(app.ID, "Tech Innovators Grant")

	require.Len(t, store.Notifications(), 1)
	require.Len(t, store.StreakData().Activities, 1)
}

func TestApplicationByID(t *testing.T) {
	store, _, _ := testStore(t)

	created := store.StartApplication(42)

	found, ok := store.ApplicationByID(created.ID)
	require.True(t, ok)
	require.Equal(t, created, found)

	_, ok = store.ApplicationByID(created.ID + 1)
	require.False(t, ok)
}

func TestGetApplicationStatusMissing(t *testing.T) {
	store, _, _ := testStore(t)

	_, ok := store.GetApplicationStatus(1)
	require.False(t, ok)
}
