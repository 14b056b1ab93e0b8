package service

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgtags/internal/chat/models"
	"msgtags/internal/chat/repository"
	"msgtags/internal/chat/tags"
	"msgtags/internal/common"
	"msgtags/internal/dbmysql"
	"msgtags/internal/metrics"
)

// TagManager applies single add/remove operations to one message's tags.
// actorID is recorded in the audit trail only.
type TagManager interface {
	AddTag(ctx context.Context, tag, actorID, messageID string) (*models.Message, error)
	RemoveTag(ctx context.Context, tag, actorID, messageID string) (*models.Message, error)
	TagHistory(ctx context.Context, messageID string, limit int) ([]*dbmysql.TagEvent, error)
}

type tagManager struct {
	repo    repository.MessageRepository
	audit   repository.TagAuditRepository
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewTagManager(repo repository.MessageRepository, audit repository.TagAuditRepository, m *metrics.Metrics, log *slog.Logger) TagManager {
	if audit == nil {
		audit = repository.NewNopTagAudit()
	}
	return &tagManager{
		repo:    repo,
		audit:   audit,
		metrics: m,
		log:     log.With("component", "tag_manager"),
	}
}

func (m *tagManager) AddTag(ctx context.Context, tag, actorID, messageID string) (*models.Message, error) {
	return m.apply(ctx, dbmysql.TagActionAdd, tag, actorID, messageID)
}

func (m *tagManager) RemoveTag(ctx context.Context, tag, actorID, messageID string) (*models.Message, error) {
	return m.apply(ctx, dbmysql.TagActionRemove, tag, actorID, messageID)
}

func (m *tagManager) TagHistory(ctx context.Context, messageID string, limit int) ([]*dbmysql.TagEvent, error) {
	id, err := common.ParseObjectID("messageId", messageID)
	if err != nil {
		return nil, err
	}
	// 404 for unknown messages rather than an empty history
	if _, err := m.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return m.audit.ByMessageID(ctx, id.Hex(), limit)
}

// apply loads the message and skips the write when the tag set would not
// change. Otherwise the store's atomic primitive does the mutation, so a
// concurrent request on the same message cannot be lost.
func (m *tagManager) apply(ctx context.Context, action dbmysql.TagAction, tag, actorID, messageID string) (*models.Message, error) {
	id, err := common.ParseObjectID("messageId", messageID)
	if err != nil {
		return nil, err
	}
	if err := common.ValidateTag(tag); err != nil {
		return nil, err
	}

	msg, err := m.repo.FindByID(ctx, id)
	if err != nil {
		m.observe(action, metrics.ResultError)
		return nil, err
	}

	present := tags.Contains(msg.Tags, tag)
	if (action == dbmysql.TagActionAdd) == present {
		m.observe(action, metrics.ResultUnchanged)
		m.record(ctx, action, tag, actorID, id, false)
		return msg, nil
	}

	var updated *models.Message
	if action == dbmysql.TagActionAdd {
		updated, err = m.repo.AddTag(ctx, id, tag)
	} else {
		updated, err = m.repo.RemoveTag(ctx, id, tag)
	}
	if err != nil {
		m.observe(action, metrics.ResultError)
		m.log.ErrorContext(ctx, "tag mutation failed",
			"action", string(action),
			"message_id", messageID,
			"tag", tag,
			"error", err)
		return nil, err
	}

	m.observe(action, metrics.ResultChanged)
	m.record(ctx, action, tag, actorID, id, true)
	return updated, nil
}

func (m *tagManager) observe(action dbmysql.TagAction, result string) {
	if m.metrics == nil {
		return
	}
	m.metrics.TagMutations.WithLabelValues(string(action), result).Inc()
}

// record never fails the request: the tag change is already stored.
func (m *tagManager) record(ctx context.Context, action dbmysql.TagAction, tag, actorID string, id primitive.ObjectID, changed bool) {
	event := &dbmysql.TagEvent{
		MessageID: id.Hex(),
		ActorID:   actorID,
		Tag:       tag,
		Action:    action,
		Changed:   changed,
	}
	if err := m.audit.Record(ctx, event); err != nil {
		m.log.WarnContext(ctx, "failed to record tag event",
			"action", string(action),
			"message_id", event.MessageID,
			"error", err)
	}
}
