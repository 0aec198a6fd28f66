package userstate

import "github.com/empowerher/empowerher/internal/models"

// AddNotification appends a notification to the user's feed and returns the
// stored record.
func (s *Store) AddNotification(title, message string, typ models.NotificationType, link string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.addNotificationLocked(title, message, typ, link)
	s.persistLocked()
	return n
}

// Notifications returns the feed, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.state.Notifications...)
}

// UnreadNotificationCount returns the number of unread feed entries.
func (s *Store) UnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.state.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationRead flags a single notification as read; unknown ids are a
// silent no-op.
func (s *Store) MarkNotificationRead(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID != id {
			continue
		}
		if s.state.Notifications[i].Read {
			return
		}
		s.state.Notifications[i].Read = true
		s.persistLocked()
		return
	}
}

// MarkAllNotificationsRead flags every feed entry as read.
func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.state.Notifications {
		if !s.state.Notifications[i].Read {
			s.state.Notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persistLocked()
	}
}

// addNotificationLocked assigns the next id, prepends the entry so the feed
// stays newest-first, and fans it out to the realtime notifier if one is
// attached. Callers persist.
func (s *Store) addNotificationLocked(title, message string, typ models.NotificationType, link string) models.Notification {
	maxID := 0
	for _, n := range s.state.Notifications {
		if n.ID > maxID {
			maxID = n.ID
		}
	}

	n := models.Notification{
		ID:      maxID + 1,
		Title:   title,
		Message: message,
		Type:    typ,
		Date:    s.now(),
		Read:    false,
		Link:    link,
	}
	s.state.Notifications = append([]models.Notification{n}, s.state.Notifications...)

	if s.notifier != nil {
		s.notifier.NotificationCreated(s.userID, n)
	}
	return n
}
