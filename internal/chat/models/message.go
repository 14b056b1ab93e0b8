package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a chat message as stored in the messages collection.
type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationID primitive.ObjectID `bson:"conversationId" json:"conversationId"`
	SenderID       primitive.ObjectID `bson:"senderId" json:"senderId"`
	Text           string             `bson:"text" json:"text"`
	Deleted        bool               `bson:"deleted" json:"deleted"`
	Tags           []string           `bson:"tags" json:"tags"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Clone returns a copy that shares no slice memory with m.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	c := *m
	c.Tags = make([]string, len(m.Tags))
	copy(c.Tags, m.Tags)
	return &c
}

// GroupedMessage is the projection of a message inside a MessageGroup.
type GroupedMessage struct {
	Text     string             `bson:"text" json:"text"`
	SenderID primitive.ObjectID `bson:"senderId" json:"senderId"`
}

// MessageGroup holds every message whose matching tags equal Key.
// ConversationID is the conversation of the first member; a group may span
// several conversations when more than one was queried.
type MessageGroup struct {
	Key            []string           `bson:"_id" json:"key"`
	ConversationID primitive.ObjectID `bson:"conversationId" json:"conversationId"`
	Messages       []GroupedMessage   `bson:"messages" json:"messages"`
}
