package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/errors"
	"github.com/empowerher/empowerher/pkg/response"
)

// Plan describes a premium subscription tier. Amounts are in naira per month;
// payment collection itself is simulated.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

var plans = []Plan{
	{
		ID:    "basic",
		Name:  "Basic",
		Price: "₦1,000/month",
		Features: []string{
			"Priority scholarship alerts",
			"Saved search filters",
		},
	},
	{
		ID:    "standard",
		Name:  "Standard",
		Price: "₦3,500/month",
		Features: []string{
			"Everything in Basic",
			"Premium scholarship listings",
			"Two mentor sessions per month",
		},
	},
	{
		ID:    "premium",
		Name:  "Premium",
		Price: "₦7,000/month",
		Features: []string{
			"Everything in Standard",
			"Unlimited mentor sessions",
			"Application review service",
		},
	},
}

// PremiumHandler serves plan listings and upgrades.
type PremiumHandler struct {
	registry *userstate.Registry
}

func NewPremiumHandler(registry *userstate.Registry) *PremiumHandler {
	return &PremiumHandler{registry: registry}
}

// GET /api/premium/plans
func (h *PremiumHandler) Plans(c *gin.Context) {
	response.Success(c, http.StatusOK, plans)
}

type upgradeRequest struct {
	Plan string `json:"plan" validate:"required"`
}

// POST /api/premium/upgrade
func (h *PremiumHandler) Upgrade(c *gin.Context) {
	store, ok := sessionStore(c, h.registry)
	if !ok {
		return
	}

	var req upgradeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if !validPlan(req.Plan) {
		response.Error(c, errors.NewBadRequest("unknown plan"))
		return
	}

	store.SetPremium(req.Plan)
	response.Success(c, http.StatusOK, gin.H{
		"is_premium": true,
		"plan":       req.Plan,
	})
}

func validPlan(id string) bool {
	for _, p := range plans {
		if p.ID == id {
			return true
		}
	}
	return false
}
