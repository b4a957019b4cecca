package ledger

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"doblink/internal/models"
)

// GormSink persists events to the registry_events table.
type GormSink struct {
	db *gorm.DB
}

// NewGormSink creates a GormSink.
func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Publish(ctx context.Context, event Event) error {
	row := &models.RegistryEvent{
		Topic:           event.Topic,
		Payload:         string(event.Payload),
		LedgerTimestamp: event.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("persist %s event: %w", event.Topic, err)
	}
	return nil
}
