package userstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/storage"
)

// fakeClock is a hand-advanced clock for streak tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testStore(t *testing.T) (*Store, *storage.MemorySink, *fakeClock) {
	t.Helper()

	sink := storage.NewMemorySink()
	clock := newFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	store := New("user-1", sink, WithNow(clock.Now))
	return store, sink, clock
}

func TestNewStoreDefaults(t *testing.T) {
	store, _, _ := testStore(t)

	profile := store.Profile()
	require.Equal(t, "Maria", profile.FirstName)
	require.Equal(t, "Gonzalez", profile.LastName)
	require.Equal(t, "Nigeria", profile.Country)
	require.Equal(t, "Secondary School", profile.EducationLevel)
	require.True(t, profile.ProfileCompleted)

	require.False(t, store.IsLoggedIn())
	require.Empty(t, store.SavedScholarships())
	require.Empty(t, store.Applications())
	require.Empty(t, store.Notifications())
}

func TestHydrateRoundTrip(t *testing.T) {
	store, sink, clock := testStore(t)

	store.Login()
	store.SaveScholarship(7)
	store.StartApplication(7)
	store.UpdateStreak(models.ActivityTopicAdded, "Added topic: Robotics")

	rehydrated := New("user-1", sink, WithNow(clock.Now))
	require.NoError(t, rehydrated.Hydrate(context.Background()))

	require.True(t, rehydrated.IsLoggedIn())
	require.True(t, rehydrated.IsSaved(7))

	status, ok := rehydrated.GetApplicationStatus(7)
	require.True(t, ok)
	require.Equal(t, models.ApplicationDraft, status)

	streak := rehydrated.StreakData()
	require.Equal(t, 1, streak.CurrentStreak)
	require.Len(t, streak.Activities, 1)
}

func TestHydrateMissingBlobKeepsDefaults(t *testing.T) {
	sink := storage.NewMemorySink()
	store := New("ghost", sink)

	require.NoError(t, store.Hydrate(context.Background()))
	require.Equal(t, "Maria", store.Profile().FirstName)
}

func TestSnapshotIsACopy(t *testing.T) {
	store, _, _ := testStore(t)

	snap := store.Snapshot()
	snap.Profile.FirstName = "Mutated"
	snap.Profile.Interests[0] = "Mutated"

	profile := store.Profile()
	require.Equal(t, "Maria", profile.FirstName)
	require.Equal(t, "Computer Science", profile.Interests[0])
}

func TestRecommendationFingerprintTracksEngineInputs(t *testing.T) {
	base := DefaultProfile()
	same := DefaultProfile()
	require.Equal(t, recommendationFingerprint(base), recommendationFingerprint(same))

	changed := DefaultProfile()
	changed.Country = "Ghana"
	require.NotEqual(t, recommendationFingerprint(base), recommendationFingerprint(changed))

	reordered := DefaultProfile()
	reordered.Interests = []string{"Mathematics", "Computer Science", "Entrepreneurship"}
	require.NotEqual(t, recommendationFingerprint(base), recommendationFingerprint(reordered))
}
