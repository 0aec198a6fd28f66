package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/response"
)

// NotificationHandler serves the notification feed.
type NotificationHandler struct {
	registry *userstate.Registry
}

func NewNotificationHandler(registry *userstate.Registry) *NotificationHandler {
	return &NotificationHandler{registry: registry}
}

// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": store.Notifications(),
		"unread":        store.UnreadNotificationCount(),
	})
}

// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": store.UnreadNotificationCount()})
}

// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("notification id must be numeric"))
		return
	}

	store.MarkNotificationRead(id)
	response.Success(c, http.StatusOK, gin.H{"unread": store.UnreadNotificationCount()})
}

// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	store.MarkAllNotificationsRead()
	response.Success(c, http.StatusOK, gin.H{"unread": 0})
}
