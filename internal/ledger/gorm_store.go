package ledger

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"doblink/internal/models"
)

// GormStore keeps the key/value space in the ledger_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore on an already-migrated database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entries []models.LedgerEntry
	result := s.db.WithContext(ctx).Where("entry_key = ?", key).Limit(1).Find(&entries)
	if result.Error != nil {
		return nil, false, fmt.Errorf("load ledger entry %q: %w", key, result.Error)
	}
	if len(entries) == 0 {
		return nil, false, nil
	}
	return entries[0].Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Commit(ctx, nil, []Write{{Key: key, Value: value}})
}

// Commit verifies reads and upserts every write inside one SQL transaction.
// On postgres the rows behind reads are locked with SELECT ... FOR UPDATE
// until the transaction ends. A key that was read as missing is inserted
// without upsert, so a concurrent insert of the same key is a conflict.
func (s *GormStore) Commit(ctx context.Context, reads []Read, writes []Write) error {
	now := time.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		absent := make(map[string]bool)
		for _, r := range reads {
			q := tx.Where("entry_key = ?", r.Key).Limit(1)
			if tx.Dialector.Name() == "postgres" {
				q = q.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			var entries []models.LedgerEntry
			if err := q.Find(&entries).Error; err != nil {
				return fmt.Errorf("verify ledger entry %q: %w", r.Key, err)
			}
			found := len(entries) > 0
			if found != r.Found || (found && !bytes.Equal(entries[0].Value, r.Value)) {
				return ErrConflict
			}
			if !found {
				absent[r.Key] = true
			}
		}

		for _, w := range writes {
			entry := models.LedgerEntry{Key: w.Key, Value: w.Value, UpdatedAt: now}
			if absent[w.Key] {
				result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
				if result.Error != nil {
					return fmt.Errorf("insert ledger entry %q: %w", w.Key, result.Error)
				}
				if result.RowsAffected == 0 {
					return ErrConflict
				}
				continue
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "entry_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&entry).Error
			if err != nil {
				return fmt.Errorf("store ledger entry %q: %w", w.Key, err)
			}
		}
		return nil
	})
}
