package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/catalog"
	"github.com/empowerher/empowerher/internal/matching"
	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/metrics"
	"github.com/empowerher/empowerher/pkg/response"
)

// ScholarshipHandler serves the catalog, bookmarks and recommendations.
type ScholarshipHandler struct {
	registry *userstate.Registry
	engine   *matching.Engine
}

func NewScholarshipHandler(registry *userstate.Registry, engine *matching.Engine) *ScholarshipHandler {
	return &ScholarshipHandler{registry: registry, engine: engine}
}

// GET /api/scholarships
func (h *ScholarshipHandler) List(c *gin.Context) {
	listings := catalog.Scholarships()
	response.SuccessWithMeta(c, http.StatusOK, listings, &response.Meta{Total: len(listings)})
}

// GET /api/scholarships/:id looks up catalog entries first, then the user's
// cached AI scholarships.
func (h *ScholarshipHandler) Get(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("scholarship id must be numeric"))
		return
	}

	if s, found := catalog.ScholarshipByID(id); found {
		response.Success(c, http.StatusOK, s)
		return
	}

	cached, _ := store.AIScholarships()
	for _, s := range cached {
		if s.ID == id {
			response.Success(c, http.StatusOK, s)
			return
		}
	}

	response.Error(c, errors.ErrNotFound)
}

// GET /api/scholarships/recommendations returns the fixed-size personalized
// list, reusing the cached set while the profile is unchanged.
func (h *ScholarshipHandler) Recommendations(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	if cached, fresh := store.AIScholarships(); fresh {
		metrics.RecommendationRuns.WithLabelValues("cached").Inc()
		response.Success(c, http.StatusOK, cached)
		return
	}

	recs := h.engine.Recommend(store.Profile(), catalog.Scholarships())
	store.SetAIScholarships(recs)
	response.Success(c, http.StatusOK, recs)
}

// GET /api/scholarships/saved
func (h *ScholarshipHandler) Saved(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	saved := store.SavedScholarships()
	cached, _ := store.AIScholarships()

	// Resolve bookmarks against the catalog and the AI cache; dangling ids
	// are tolerated and skipped.
	out := make([]models.Scholarship, 0, len(saved))
	for _, bookmark := range saved {
		if s, found := catalog.ScholarshipByID(bookmark.ScholarshipID); found {
			out = append(out, s)
			continue
		}
		for _, s := range cached {
			if s.ID == bookmark.ScholarshipID {
				out = append(out, s)
				break
			}
		}
	}

	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{Total: len(out)})
}

// POST /api/scholarships/:id/save
func (h *ScholarshipHandler) Save(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("scholarship id must be numeric"))
		return
	}

	saved := store.SaveScholarship(id)
	response.Success(c, http.StatusOK, gin.H{"saved": saved})
}

// DELETE /api/scholarships/:id/save
func (h *ScholarshipHandler) Unsave(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, errors.NewBadRequest("scholarship id must be numeric"))
		return
	}

	store.UnsaveScholarship(id)
	response.Success(c, http.StatusOK, gin.H{"saved": false})
}
