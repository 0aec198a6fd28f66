package userstate

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/empowerher/empowerher/internal/storage"
	"github.com/empowerher/empowerher/pkg/logger"
	"github.com/empowerher/empowerher/pkg/metrics"
)

// Registry owns the live session stores, one per authenticated user. Stores
// are hydrated lazily on first access and evicted on logout or after an idle
// period by the maintenance cleaner.
type Registry struct {
	mu       sync.Mutex
	sink     storage.Sink
	opts     []Option
	log      *zap.Logger
	now      func() time.Time
	sessions map[string]*session
}

type session struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry builds a registry whose stores share the given sink and options.
func NewRegistry(sink storage.Sink, opts ...Option) *Registry {
	return &Registry{
		sink:     sink,
		opts:     opts,
		log:      logger.WithModule("userstate"),
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the live store for a user, hydrating a new one from the sink if
// none exists yet. Hydration failures fall back to default state rather than
// blocking the session.
func (r *Registry) Get(ctx context.Context, userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[userID]; ok {
		sess.lastSeen = r.now()
		return sess.store
	}

	store := New(userID, r.sink, r.opts...)
	if err := store.Hydrate(ctx); err != nil {
		r.log.Warn("hydrate session", zap.String("user_id", userID), zap.Error(err))
	}

	r.sessions[userID] = &session{store: store, lastSeen: r.now()}
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return store
}

// Evict drops a user's live store. The persisted blob is left alone; the next
// Get rehydrates from it.
func (r *Registry) Evict(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[userID]; !ok {
		return
	}
	delete(r.sessions, userID)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
}

// EvictIdle drops every store untouched for longer than ttl and returns how
// many were evicted.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	evicted := 0
	for userID, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, userID)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.ActiveSessions.Set(float64(len(r.sessions)))
	}
	return evicted
}

// ForEach visits every live store. The registry lock is held for the
// duration, so fn must not call back into the registry.
func (r *Registry) ForEach(fn func(store *Store)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sess := range r.sessions {
		fn(sess.store)
	}
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
