//go:generate mockgen -source=chat_repository.go -destination=mocks/mock_repository.go -package=mocks

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgtags/internal/chat/models"
	"msgtags/internal/dbmysql"
)

// MessageRepository is the persistence contract the chat services rely on.
// Lookups of unknown ids fail with common.ErrNotFound.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
	MarkDeleted(ctx context.Context, id primitive.ObjectID) (*models.Message, error)

	// AddTag appends tag if absent and RemoveTag drops it if present. Both are
	// single atomic operations at the store and return the stored record.
	AddTag(ctx context.Context, id primitive.ObjectID, tag string) (*models.Message, error)
	RemoveTag(ctx context.Context, id primitive.ObjectID, tag string) (*models.Message, error)

	// FindTagged returns non-deleted messages of the given conversations that
	// carry at least one of tags.
	FindTagged(ctx context.Context, conversationIDs []primitive.ObjectID, tags []string) ([]*models.Message, error)
}

// TagGrouper is implemented by stores that can group tagged messages
// themselves, e.g. with an aggregation pipeline.
type TagGrouper interface {
	GroupByTags(ctx context.Context, conversationIDs []primitive.ObjectID, tags []string) ([]*models.MessageGroup, error)
}

type TagAuditRepository interface {
	Record(ctx context.Context, event *dbmysql.TagEvent) error
	ByMessageID(ctx context.Context, messageID string, limit int) ([]*dbmysql.TagEvent, error)
}

type nopAudit struct{}

// NewNopTagAudit is used when the audit trail is disabled.
func NewNopTagAudit() TagAuditRepository {
	return nopAudit{}
}

func (nopAudit) Record(context.Context, *dbmysql.TagEvent) error { return nil }

func (nopAudit) ByMessageID(context.Context, string, int) ([]*dbmysql.TagEvent, error) {
	return []*dbmysql.TagEvent{}, nil
}
