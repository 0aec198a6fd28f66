package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/catalog"
	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/response"
)

// MentorHandler serves the mentor directory. Premium-only mentors are listed
// for everyone but interacting with them requires an active plan.
type MentorHandler struct {
	registry *userstate.Registry
}

func NewMentorHandler(registry *userstate.Registry) *MentorHandler {
	return &MentorHandler{registry: registry}
}

// GET /api/mentors
func (h *MentorHandler) List(c *gin.Context) {
	mentors := catalog.Mentors()
	response.SuccessWithMeta(c, http.StatusOK, mentors, &response.Meta{Total: len(mentors)})
}

// GET /api/mentors/:id records a profile view.
func (h *MentorHandler) Get(c *gin.Context) {
	store, mentor, ok := h.resolve(c)
	if !ok {
		return
	}

	store.ViewMentor(mentor.Name)
	response.Success(c, http.StatusOK, mentor)
}

// POST /api/mentors/:id/connect sends a connection request. Requires a
// completed profile; premium mentors additionally require a plan.
func (h *MentorHandler) Connect(c *gin.Context) {
	store, mentor, ok := h.resolve(c)
	if !ok {
		return
	}

	if !store.CheckProfileCompletion() {
		response.Error(c, errors.ErrProfileIncomplete)
		return
	}
	if mentor.IsPremium && !store.IsPremium() {
		response.Error(c, errors.ErrPremiumRequired)
		return
	}

	store.ConnectMentor(mentor.Name)
	response.Success(c, http.StatusOK, gin.H{"requested": true})
}

func (h *MentorHandler) resolve(c *gin.Context) (*userstate.Store, models.Mentor, bool) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return nil, models.Mentor{}, false
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("mentor id must be numeric"))
		return nil, models.Mentor{}, false
	}

	mentor, found := catalog.MentorByID(id)
	if !found {
		response.Error(c, errors.ErrNotFound)
		return nil, models.Mentor{}, false
	}

	return store, mentor, true
}
