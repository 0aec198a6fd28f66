package userstate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
)

type capturingNotifier struct {
	userIDs []string
	items   []models.Notification
}

func (c *capturingNotifier) NotificationCreated(userID string, n models.Notification) {
	c.userIDs = append(c.userIDs, userID)
	c.items = append(c.items, n)
}

func TestNotificationsNewestFirst(t *testing.T) {
	store, _, _ := testStore(t)

	store.AddNotification("First", "one", models.NotificationInfo, "")
	store.AddNotification("Second", "two", models.NotificationWarning, "/x")

	feed := store.Notifications()
	require.Len(t, feed, 2)
	require.Equal(t, "Second", feed[0].Title)
	require.Equal(t, "First", feed[1].Title)
	require.Equal(t, 2, feed[0].ID)
	require.Equal(t, 1, feed[1].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	store, _, _ := testStore(t)

	n := store.AddNotification("Hello", "msg", models.NotificationInfo, "")
	require.Equal(t, 1, store.UnreadNotificationCount())

	store.MarkNotificationRead(n.ID)
	require.Equal(t, 0, store.UnreadNotificationCount())

	// Unknown ids are a silent no-op.
	store.MarkNotificationRead(999)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	store, _, _ := testStore(t)

	store.AddNotification("A", "a", models.NotificationInfo, "")
	store.AddNotification("B", "b", models.NotificationError, "")
	require.Equal(t, 2, store.UnreadNotificationCount())

	store.MarkAllNotificationsRead()
	require.Equal(t, 0, store.UnreadNotificationCount())
}

func TestNotifierFanOut(t *testing.T) {
	notifier := &capturingNotifier{}
	store, _, _ := testStore(t)
	store.notifier = notifier

	store.AddNotification("Live", "pushed", models.NotificationInfo, "")

	require.Equal(t, []string{"user-1"}, notifier.userIDs)
	require.Len(t, notifier.items, 1)
	require.Equal(t, "Live", notifier.items[0].Title)
}
