package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgtags/internal/chat/models"
	"msgtags/internal/chat/tags"
	"msgtags/internal/common"
)

// MemoryRepository keeps messages in a map. Every mutation holds the write
// lock for its whole read-modify-write, reads take the read lock.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages map[primitive.ObjectID]*models.Message
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		messages: make(map[primitive.ObjectID]*models.Message),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	msg.UpdatedAt = now
	if msg.Tags == nil {
		msg.Tags = []string{}
	}
	r.messages[msg.ID] = msg.Clone()
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, common.NewNotFoundError("message", id.Hex())
	}
	return msg.Clone(), nil
}

func (r *MemoryRepository) MarkDeleted(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	return r.mutate(id, func(msg *models.Message) bool {
		if msg.Deleted {
			return false
		}
		msg.Deleted = true
		return true
	})
}

func (r *MemoryRepository) AddTag(ctx context.Context, id primitive.ObjectID, tag string) (*models.Message, error) {
	return r.mutate(id, func(msg *models.Message) bool {
		var changed bool
		msg.Tags, changed = tags.Add(msg.Tags, tag)
		return changed
	})
}

func (r *MemoryRepository) RemoveTag(ctx context.Context, id primitive.ObjectID, tag string) (*models.Message, error) {
	return r.mutate(id, func(msg *models.Message) bool {
		var changed bool
		msg.Tags, changed = tags.Remove(msg.Tags, tag)
		return changed
	})
}

func (r *MemoryRepository) FindTagged(ctx context.Context, conversationIDs []primitive.ObjectID, requested []string) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inConversation := make(map[primitive.ObjectID]struct{}, len(conversationIDs))
	for _, id := range conversationIDs {
		inConversation[id] = struct{}{}
	}

	var out []*models.Message
	for _, msg := range r.messages {
		if msg.Deleted {
			continue
		}
		if _, ok := inConversation[msg.ConversationID]; !ok {
			continue
		}
		if !tags.Overlaps(msg.Tags, requested) {
			continue
		}
		out = append(out, msg.Clone())
	}
	return out, nil
}

// Reset drops every stored message.
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = make(map[primitive.ObjectID]*models.Message)
}

func (r *MemoryRepository) mutate(id primitive.ObjectID, apply func(*models.Message) bool) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messages[id]
	if !ok {
		return nil, common.NewNotFoundError("message", id.Hex())
	}
	if apply(msg) {
		msg.UpdatedAt = time.Now().UTC()
	}
	return msg.Clone(), nil
}
