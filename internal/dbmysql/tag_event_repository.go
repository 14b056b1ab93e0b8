package dbmysql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagEventRepository struct {
	db *gorm.DB
}

func NewTagEventRepository(db *gorm.DB) *TagEventRepository {
	return &TagEventRepository{db: db}
}

func (r *TagEventRepository) Record(ctx context.Context, event *TagEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to record tag event: %w", err)
	}
	return nil
}

// ByMessageID lists the newest events first. limit <= 0 means no limit.
func (r *TagEventRepository) ByMessageID(ctx context.Context, messageID string, limit int) ([]*TagEvent, error) {
	var events []*TagEvent

	query := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to get tag events: %w", err)
	}
	return events, nil
}
