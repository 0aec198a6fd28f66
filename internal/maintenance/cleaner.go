// Package maintenance runs the background housekeeping jobs: pruning stale
// persisted state blobs, evicting idle sessions, and reminding users about
// approaching deadlines on saved scholarships.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/empowerher/empowerher/internal/catalog"
	"github.com/empowerher/empowerher/internal/models"
	"github.com/empowerher/empowerher/internal/storage"
	"github.com/empowerher/empowerher/internal/userstate"
	"github.com/empowerher/empowerher/pkg/logger"
)

const (
	defaultStateRetentionDays = 90
	defaultSessionIdleTTL     = 30 * time.Minute
	defaultDeadlineWindowDays = 14

	defaultPruneSpec    = "@daily"
	defaultEvictSpec    = "@every 10m"
	defaultReminderSpec = "@daily"

	deadlineLayout = "January 2, 2006"
)

// Cleaner coordinates the scheduled maintenance jobs. Any nil dependency
// results in the corresponding job being skipped.
type Cleaner struct {
	sink      *storage.DatabaseSink
	registry  *userstate.Registry
	cron      *cron.Cron
	now       func() time.Time
	log       *zap.Logger
	retention int
	idleTTL   time.Duration

	pruneSchedule    string
	evictSchedule    string
	reminderSchedule string
}

// Option customises the Cleaner.
type Option func(*Cleaner)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(cleaner *Cleaner) {
		if c != nil {
			cleaner.cron = c
		}
	}
}

// WithNow overrides the clock used for retention comparisons.
func WithNow(now func() time.Time) Option {
	return func(cleaner *Cleaner) {
		if now != nil {
			cleaner.now = now
		}
	}
}

// WithStateRetentionDays adjusts how long untouched state blobs are kept.
func WithStateRetentionDays(days int) Option {
	return func(cleaner *Cleaner) {
		if days > 0 {
			cleaner.retention = days
		}
	}
}

// WithSessionIdleTTL adjusts how long an idle session store stays in memory.
func WithSessionIdleTTL(ttl time.Duration) Option {
	return func(cleaner *Cleaner) {
		if ttl > 0 {
			cleaner.idleTTL = ttl
		}
	}
}

// NewCleaner constructs a Cleaner with sensible defaults.
func NewCleaner(sink *storage.DatabaseSink, registry *userstate.Registry, opts ...Option) *Cleaner {
	cleaner := &Cleaner{
		sink:             sink,
		registry:         registry,
		now:              time.Now,
		retention:        defaultStateRetentionDays,
		idleTTL:          defaultSessionIdleTTL,
		pruneSchedule:    defaultPruneSpec,
		evictSchedule:    defaultEvictSpec,
		reminderSchedule: defaultReminderSpec,
		log:              logger.WithModule("maintenance"),
	}

	for _, opt := range opts {
		opt(cleaner)
	}

	if cleaner.cron == nil {
		cleaner.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}

	return cleaner
}

// Start registers the jobs with the scheduler and launches it.
func (c *Cleaner) Start() error {
	if c.sink != nil {
		if _, err := c.cron.AddFunc(c.pruneSchedule, func() {
			if _, err := c.PruneState(context.Background()); err != nil {
				c.log.Warn("state prune failed", zap.Error(err))
			}
		}); err != nil {
			return err
		}
	}

	if c.registry != nil {
		if _, err := c.cron.AddFunc(c.evictSchedule, func() {
			c.EvictIdleSessions()
		}); err != nil {
			return err
		}

		if _, err := c.cron.AddFunc(c.reminderSchedule, func() {
			c.SendDeadlineReminders()
		}); err != nil {
			return err
		}
	}

	c.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for any running job to complete.
func (c *Cleaner) Stop() context.Context {
	if c.cron == nil {
		return context.Background()
	}
	return c.cron.Stop()
}

// RunOnce executes all configured jobs sequentially, for tests and graceful
// shutdown.
func (c *Cleaner) RunOnce(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var errs error
	if c.sink != nil {
		if _, err := c.PruneState(ctx); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if c.registry != nil {
		c.EvictIdleSessions()
		c.SendDeadlineReminders()
	}
	return errs
}

// PruneState removes persisted state blobs untouched past the retention
// window. Live sessions rewrite their blob on every mutation, so anything
// stale belongs to long-gone users.
func (c *Cleaner) PruneState(ctx context.Context) (int64, error) {
	cutoff := c.now().AddDate(0, 0, -c.retention)
	pruned, err := c.sink.PruneStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("maintenance: prune state: %w", err)
	}
	if pruned > 0 {
		c.log.Info("pruned stale state", zap.Int64("count", pruned))
	}
	return pruned, nil
}

// EvictIdleSessions drops in-memory stores that have gone unused.
func (c *Cleaner) EvictIdleSessions() {
	if evicted := c.registry.EvictIdle(c.idleTTL); evicted > 0 {
		c.log.Info("evicted idle sessions", zap.Int("count", evicted))
	}
}

// SendDeadlineReminders warns each live session about saved scholarships whose
// deadline falls inside the reminder window. A reminder is sent at most once
// per scholarship per user.
func (c *Cleaner) SendDeadlineReminders() {
	now := c.now()
	windowEnd := now.AddDate(0, 0, defaultDeadlineWindowDays)

	c.registry.ForEach(func(store *userstate.Store) {
		cached, _ := store.AIScholarships()

		for _, bookmark := range store.SavedScholarships() {
			scholarship, found := resolveScholarship(bookmark.ScholarshipID, cached)
			if !found {
				continue
			}

			deadline, err := time.Parse(deadlineLayout, scholarship.Deadline)
			if err != nil || deadline.Before(now) || deadline.After(windowEnd) {
				continue
			}

			title := fmt.Sprintf("Deadline Approaching: %s", scholarship.Title)
			if hasNotification(store, title) {
				continue
			}

			store.AddNotification(
				title,
				fmt.Sprintf("The deadline for %s is %s. Submit your application soon!",
					scholarship.Title, scholarship.Deadline),
				models.NotificationWarning,
				fmt.Sprintf("/scholarships/%d", scholarship.ID),
			)
		}
	})
}

func resolveScholarship(id int, cached []models.Scholarship) (models.Scholarship, bool) {
	if s, found := catalog.ScholarshipByID(id); found {
		return s, true
	}
	for _, s := range cached {
		if s.ID == id {
			return s, true
		}
	}
	return models.Scholarship{}, false
}

func hasNotification(store *userstate.Store, title string) bool {
	for _, n := range store.Notifications() {
		if n.Title == title {
			return true
		}
	}
	return false
}
