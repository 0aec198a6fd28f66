package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/empowerher/empowerher/internal/models"
)

func dialHub(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(userID, w, r)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(userID) == 1
	}, time.Second, 10*time.Millisecond)
	return conn
}

func TestHubDeliversNotification(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, "user-1")

	hub.NotificationCreated("user-1", models.Notification{
		ID:    1,
		Title: "5-Day Streak!",
		Type:  models.NotificationSuccess,
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))

	require.Equal(t, "notification.created", event.Event)
	require.NotNil(t, event.Notification)
	require.Equal(t, "5-Day Streak!", event.Notification.Title)
}

func TestHubBroadcastTargetsSingleUser(t *testing.T) {
	hub := NewHub()
	dialHub(t, hub, "user-1")
	other := dialHub(t, hub, "user-2")

	hub.Broadcast("user-1", Event{Event: "notification.created"})

	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var event Event
	require.Error(t, other.ReadJSON(&event), "other users must not receive the event")
}

func TestHubBroadcastWithoutSubscribersIsSilent(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("nobody", Event{Event: "notification.created"})
	require.Zero(t, hub.SubscriberCount("nobody"))
}
