package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/response"
)

// ProfileHandler exposes the profile and the engagement streak.
type ProfileHandler struct {
	registry *userstate.Registry
}

func NewProfileHandler(registry *userstate.Registry) *ProfileHandler {
	return &ProfileHandler{registry: registry}
}

// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, store.Profile())
}

// PATCH /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if !bindAndValidate(c, &update) {
		return
	}

	response.Success(c, http.StatusOK, store.UpdateProfile(update))
}

// GET /api/profile/completion
func (h *ProfileHandler) Completion(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile_completed": store.CheckProfileCompletion()})
}

// GET /api/profile/streak
func (h *ProfileHandler) Streak(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, store.StreakData())
}

type activityRequest struct {
	Type    models.ActivityType `json:"type" validate:"required"`
	Details string              `json:"details"`
}

// POST /api/profile/activity records a client-side engagement event, e.g. a
// study topic added from the dashboard.
func (h *ProfileHandler) RecordActivity(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	var req activityRequest
	if !bindAndValidate(c, &req) {
		return
	}

	store.UpdateStreak(req.Type, req.Details)
	response.Success(c, http.StatusOK, store.StreakData())
}
