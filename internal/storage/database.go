package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/empowerher/empowerher/internal/models"
)

// DatabaseSink persists session blobs as rows in the primary SQL database.
type DatabaseSink struct {
	db *gorm.DB
}

// NewDatabaseSink constructs a database-backed Sink.
func NewDatabaseSink(db *gorm.DB) *DatabaseSink {
	if db == nil {
		return nil
	}
	return &DatabaseSink{db: db}
}

// Save upserts the blob for a given key.
func (s *DatabaseSink) Save(ctx context.Context, key string, blob []byte) error {
	if s == nil {
		return errors.New("storage: database sink not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	entry := models.StateEntry{
		Key:       key,
		State:     datatypes.JSON(blob),
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).Create(&entry).Error
}

// Load retrieves the blob stored under key.
func (s *DatabaseSink) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if s == nil {
		return nil, false, errors.New("storage: database sink not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var entry models.StateEntry
	err := s.db.WithContext(ctx).Take(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return []byte(entry.State), true, nil
}

// Delete removes the blob stored under key; missing keys are not an error.
func (s *DatabaseSink) Delete(ctx context.Context, key string) error {
	if s == nil {
		return errors.New("storage: database sink not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.StateEntry{}).Error
}

// PruneStale deletes blobs untouched since the cutoff and returns how many
// rows were removed. Used by the maintenance cleaner.
func (s *DatabaseSink) PruneStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if s == nil {
		return 0, errors.New("storage: database sink not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result := s.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&models.StateEntry{})
	return result.RowsAffected, result.Error
}
