package userstate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/storage"
)

func TestLoginWelcomesFirstSessionOnly(t *testing.T) {
	store, _, _ := testStore(t)

	store.Login()
	require.True(t, store.IsLoggedIn())

	feed := store.Notifications()
	require.Len(t, feed, 1)
	require.Equal(t, "Welcome to EmpowerHer!", feed[0].Title)

	// Logging in again with an existing feed does not greet twice.
	store.Login()
	require.Len(t, store.Notifications(), 1)
}

func TestLogoutResetsEverything(t *testing.T) {
	store, sink, clock := testStore(t)

	store.Login()
	store.SaveScholarship(3)
	store.StartApplication(3)
	store.UpdateStreak(models.ActivityTopicAdded, "topic")
	store.UpdateProfile(models.ProfileUpdate{Country: strPtr("Ghana")})

	store.Logout()

	require.False(t, store.IsLoggedIn())
	require.Equal(t, "Nigeria", store.Profile().Country)
	require.Empty(t, store.SavedScholarships())
	require.Empty(t, store.Applications())
	require.Empty(t, store.Notifications())
	require.Zero(t, store.StreakData().CurrentStreak)

	// The reset is persisted, not just in memory.
	rehydrated := New("user-1", sink, WithNow(clock.Now))
	require.NoError(t, rehydrated.Hydrate(context.Background()))
	require.False(t, rehydrated.IsLoggedIn())
	require.Empty(t, rehydrated.SavedScholarships())
}

func TestSetPremium(t *testing.T) {
	store, _, _ := testStore(t)
	require.False(t, store.IsPremium())

	store.SetPremium("standard")

	require.True(t, store.IsPremium())
	require.Equal(t, "standard", store.Profile().PremiumPlan)

	feed := store.Notifications()
	require.Len(t, feed, 1)
	require.Equal(t, "Premium Activated", feed[0].Title)
}

func TestRegistryHydratesOncePerUser(t *testing.T) {
	sink := storage.NewMemorySink()
	registry := NewRegistry(sink)
	ctx := context.Background()

	store := registry.Get(ctx, "user-1")
	store.SaveScholarship(5)

	same := registry.Get(ctx, "user-1")
	require.Same(t, store, same)
	require.Equal(t, 1, registry.Len())

	registry.Evict("user-1")
	require.Equal(t, 0, registry.Len())

	// A fresh Get rehydrates from the persisted blob.
	back := registry.Get(ctx, "user-1")
	require.NotSame(t, store, back)
	require.True(t, back.IsSaved(5))
}

func TestRegistryEvictIdle(t *testing.T) {
	registry := NewRegistry(storage.NewMemorySink())
	ctx := context.Background()

	registry.Get(ctx, "user-1")
	registry.Get(ctx, "user-2")

	require.Zero(t, registry.EvictIdle(time.Hour))
	require.Equal(t, 2, registry.Len())

	require.Equal(t, 2, registry.EvictIdle(-time.Second))
	require.Equal(t, 0, registry.Len())
}

func TestRegistryForEach(t *testing.T) {
	registry := NewRegistry(storage.NewMemorySink())
	ctx := context.Background()

	registry.Get(ctx, "a")
	registry.Get(ctx, "b")

	seen := map[string]bool{}
	registry.ForEach(func(store *Store) {
		seen[store.UserID()] = true
	})
	require.Equal(t, map[string]bool{"a": true, "b": true}, seen)
}
