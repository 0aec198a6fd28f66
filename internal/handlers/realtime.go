package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/middleware"
	"github.com/empowerher/empowerher/internal/realtime"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/response"
)

// RealtimeHandler upgrades authenticated requests into notification streams.
type RealtimeHandler struct {
	hub *realtime.Hub
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// GET /api/ws/notifications
func (h *RealtimeHandler) Notifications(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if userID == "" {
		response.Error(c, errors.ErrUnauthorized)
		return
	}

	h.hub.Serve(userID, c.Writer, c.Request)
}
