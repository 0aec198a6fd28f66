package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/catalog"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/response"
)

// ApplicationHandler drives the application lifecycle.
type ApplicationHandler struct {
	registry *userstate.Registry
}

func NewApplicationHandler(registry *userstate.Registry) *ApplicationHandler {
	return &ApplicationHandler{registry: registry}
}

// GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	apps := store.Applications()
	response.SuccessWithMeta(c, http.StatusOK, apps, &response.Meta{Total: len(apps)})
}

type startApplicationRequest struct {
	ScholarshipID int `json:"scholarship_id" validate:"required"`
}

// POST /api/applications opens a draft application for a scholarship.
func (h *ApplicationHandler) Start(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	var req startApplicationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	response.Success(c, http.StatusCreated, store.StartApplication(req.ScholarshipID))
}

// POST /api/applications/:id/submit submits a drafted application by its
// application id. Submission is gated on a completed profile.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("application id must be numeric"))
		return
	}

	app, found := store.ApplicationByID(id)
	if !found {
		response.Error(c, errors.ErrNotFound)
		return
	}
	if !store.CheckProfileCompletion() {
		response.Error(c, errors.ErrProfileIncomplete)
		return
	}

	store.SubmitApplication(id, scholarshipTitle(store, app.ScholarshipID))

	app, _ = store.ApplicationByID(id)
	response.Success(c, http.StatusOK, gin.H{"status": app.Status})
}

// GET /api/applications/status/:id reports the status for a scholarship id,
// or 404 when the user never opened an application for it.
func (h *ApplicationHandler) Status(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("scholarship id must be numeric"))
		return
	}

	status, found := store.GetApplicationStatus(id)
	if !found {
		response.Error(c, errors.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}

func scholarshipTitle(store *userstate.Store, id int) string {
	if s, found := catalog.ScholarshipByID(id); found {
		return s.Title
	}
	cached, _ := store.AIScholarships()
	for _, s := range cached {
		if s.ID == id {
			return s.Title
		}
	}
	return "Scholarship"
}
