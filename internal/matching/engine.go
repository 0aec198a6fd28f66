// Package matching scores a scholarship catalog against a user profile and
// fabricates plausible scholarship records when the catalog comes up short.
// All operations are pure with respect to their inputs; randomness and the
// clock are injected so callers can pin both in tests.
package matching

import (
	"math/rand"
	"sync"
	"time"

	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/pkg/metrics"
)

// RecommendationCount is the fixed length of a recommendation list.
const RecommendationCount = 5

// syntheticIDBase keeps generated ids clear of catalog ids.
const syntheticIDBase = 1000

// Engine computes ranked scholarship recommendations.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option customises an Engine.
type Option func(*Engine)

// WithRandSource injects a deterministic randomness source.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = rand.New(src)
		}
	}
}

// WithNow overrides the clock used for synthetic deadlines.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine constructs an Engine seeded from the system clock unless a source
// is supplied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend returns exactly RecommendationCount scholarships for the profile.
// Ranked catalog matches come first; any shortfall is filled with synthetic
// records, preserving ranked-then-synthetic order. An empty catalog yields an
// entirely synthetic list.
func (e *Engine) Recommend(profile models.Profile, catalog []models.Scholarship) []models.Scholarship {
	metrics.RecommendationRuns.WithLabelValues("fresh").Inc()

	ranked := e.ScoreAndRank(profile, catalog)
	if len(ranked) >= RecommendationCount {
		return ranked[:RecommendationCount]
	}

	out := make([]models.Scholarship, 0, RecommendationCount)
	out = append(out, ranked...)
	out = append(out, e.Synthesize(profile, RecommendationCount-len(ranked))...)
	return out
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}
