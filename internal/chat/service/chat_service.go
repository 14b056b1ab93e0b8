//go:generate mockgen -destination=../handler/mocks/mock_service.go -package=mocks msgtags/internal/chat/service ChatService,TagManager,TagQueryEngine

package service

import (
	"context"
	"fmt"
	"log/slog"

	"msgtags/internal/chat/models"
	"msgtags/internal/chat/repository"
	"msgtags/internal/chat/tags"
	"msgtags/internal/common"
)

// ChatService defines the message lifecycle exposed to the handler layer
type ChatService interface {
	SendMessage(ctx context.Context, conversationID, senderID, text string, initialTags []string) (*models.Message, error)
	GetMessage(ctx context.Context, messageID string) (*models.Message, error)
	DeleteMessage(ctx context.Context, messageID string) (*models.Message, error)
}

type chatService struct {
	repo repository.MessageRepository
	log  *slog.Logger
}

// Constructor used in DI/wire
func NewChatService(r repository.MessageRepository, log *slog.Logger) ChatService {
	return &chatService{repo: r, log: log.With("component", "chat_service")}
}

// SendMessage stores a new, non-deleted message. Initial tags are deduplicated
// keeping the first occurrence.
func (s *chatService) SendMessage(ctx context.Context, conversationID, senderID, text string, initialTags []string) (*models.Message, error) {
	convID, err := common.ParseObjectID("conversationId", conversationID)
	if err != nil {
		return nil, err
	}
	sender, err := common.ParseObjectID("senderId", senderID)
	if err != nil {
		return nil, err
	}
	for _, t := range initialTags {
		if err := common.ValidateTag(t); err != nil {
			return nil, err
		}
	}

	msg := &models.Message{
		ConversationID: convID,
		SenderID:       sender,
		Text:           text,
		Tags:           tags.Normalize(initialTags),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "message created",
		"message_id", msg.ID.Hex(),
		"conversation_id", conversationID,
		"tags", len(msg.Tags))
	return msg, nil
}

func (s *chatService) GetMessage(ctx context.Context, messageID string) (*models.Message, error) {
	id, err := common.ParseObjectID("messageId", messageID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// DeleteMessage is a soft delete; the tag list is left as is.
func (s *chatService) DeleteMessage(ctx context.Context, messageID string) (*models.Message, error) {
	id, err := common.ParseObjectID("messageId", messageID)
	if err != nil {
		return nil, err
	}
	msg, err := s.repo.MarkDeleted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete message %s: %w", messageID, err)
	}
	s.log.InfoContext(ctx, "message deleted", "message_id", messageID)
	return msg, nil
}
