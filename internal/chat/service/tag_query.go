package service

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgtags/internal/chat/models"
	"msgtags/internal/chat/repository"
	"msgtags/internal/chat/tags"
	"msgtags/internal/common"
	"msgtags/internal/metrics"
)

// TagQueryEngine groups the non-deleted messages of some conversations by
// the subset of requested tags each one carries.
type TagQueryEngine interface {
	GetMessagesGroupedByTags(ctx context.Context, conversationIDs, tagList []string) ([]*models.MessageGroup, error)
}

type tagQueryEngine struct {
	repo    repository.MessageRepository
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewTagQueryEngine(repo repository.MessageRepository, m *metrics.Metrics, log *slog.Logger) TagQueryEngine {
	return &tagQueryEngine{
		repo:    repo,
		metrics: m,
		log:     log.With("component", "tag_query"),
	}
}

// GetMessagesGroupedByTags returns one group per distinct matching subset.
// The order of groups and of messages within a group is unspecified.
func (e *tagQueryEngine) GetMessagesGroupedByTags(ctx context.Context, conversationIDs, tagList []string) ([]*models.MessageGroup, error) {
	if len(conversationIDs) == 0 || len(tagList) == 0 {
		return []*models.MessageGroup{}, nil
	}

	ids, err := common.ParseObjectIDs("conversationIds", conversationIDs)
	if err != nil {
		return nil, err
	}
	for _, t := range tagList {
		if err := common.ValidateTag(t); err != nil {
			return nil, err
		}
	}

	var groups []*models.MessageGroup
	if grouper, ok := e.repo.(repository.TagGrouper); ok {
		groups, err = grouper.GroupByTags(ctx, ids, tagList)
	} else {
		groups, err = e.groupInMemory(ctx, ids, tagList)
	}
	if err != nil {
		e.observe("error", 0)
		e.log.ErrorContext(ctx, "grouped tag query failed", "error", err)
		return nil, err
	}
	if groups == nil {
		groups = []*models.MessageGroup{}
	}

	e.observe("ok", len(groups))
	return groups, nil
}

func (e *tagQueryEngine) groupInMemory(ctx context.Context, ids []primitive.ObjectID, tagList []string) ([]*models.MessageGroup, error) {
	candidates, err := e.repo.FindTagged(ctx, ids, tagList)
	if err != nil {
		return nil, err
	}
	return GroupMessages(candidates, tagList), nil
}

// GroupMessages applies the grouping rules to an already filtered candidate
// list. Messages with no matching tag are skipped.
func GroupMessages(candidates []*models.Message, tagList []string) []*models.MessageGroup {
	groups := []*models.MessageGroup{}
	byKey := make(map[string]*models.MessageGroup)

	for _, msg := range candidates {
		if msg.Deleted {
			continue
		}
		matched := tags.Matching(msg.Tags, tagList)
		if len(matched) == 0 {
			continue
		}

		key := tags.Key(matched)
		group, ok := byKey[key]
		if !ok {
			group = &models.MessageGroup{
				Key:            matched,
				ConversationID: msg.ConversationID,
				Messages:       []models.GroupedMessage{},
			}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.Messages = append(group.Messages, models.GroupedMessage{
			Text:     msg.Text,
			SenderID: msg.SenderID,
		})
	}
	return groups
}

func (e *tagQueryEngine) observe(result string, groups int) {
	if e.metrics == nil {
		return
	}
	e.metrics.GroupedQueries.WithLabelValues(result).Inc()
	if result == "ok" {
		e.metrics.GroupsReturned.Observe(float64(groups))
	}
}
