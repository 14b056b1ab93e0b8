package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"msgtags/internal/chat/models"
	"msgtags/internal/common"
)

// MessageStore persists messages in one collection. Tag mutations are single
// findAndModify commands so concurrent add/remove calls never lose updates.
type MessageStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMessageStore(coll *mongo.Collection, timeout time.Duration) *MessageStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MessageStore{coll: coll, timeout: timeout}
}

// EnsureIndexes creates the indexes the grouped query filters on.
func (s *MessageStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "deleted", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

func (s *MessageStore) Create(ctx context.Context, msg *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

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

	if _, err := s.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (s *MessageStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var msg models.Message
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewNotFoundError("message", id.Hex())
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return normalize(&msg), nil
}

func (s *MessageStore) MarkDeleted(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	msg, err := s.findOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"deleted": true, "updatedAt": time.Now().UTC()}},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, common.NewNotFoundError("message", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete message: %w", err)
	}
	return msg, nil
}

// AddTag pushes tag only when the array does not already hold it. $push is
// used over $addToSet because it guarantees the value lands at the end.
func (s *MessageStore) AddTag(ctx context.Context, id primitive.ObjectID, tag string) (*models.Message, error) {
	msg, err := s.findOneAndUpdate(ctx,
		bson.M{"_id": id, "tags": bson.M{"$ne": tag}},
		bson.M{
			"$push": bson.M{"tags": tag},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// either missing or already tagged
		return s.FindByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add tag: %w", err)
	}
	return msg, nil
}

func (s *MessageStore) RemoveTag(ctx context.Context, id primitive.ObjectID, tag string) (*models.Message, error) {
	msg, err := s.findOneAndUpdate(ctx,
		bson.M{"_id": id, "tags": tag},
		bson.M{
			"$pull": bson.M{"tags": tag},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return s.FindByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to remove tag: %w", err)
	}
	return msg, nil
}

func (s *MessageStore) FindTagged(ctx context.Context, conversationIDs []primitive.ObjectID, tags []string) ([]*models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, taggedFilter(conversationIDs, tags))
	if err != nil {
		return nil, fmt.Errorf("failed to find tagged messages: %w", err)
	}

	var messages []*models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode tagged messages: %w", err)
	}
	for _, m := range messages {
		normalize(m)
	}
	return messages, nil
}

// GroupByTags runs the grouping server side. Grouping on an array _id keys
// by ordered equality, which is exactly the matching-subset rule.
func (s *MessageStore) GroupByTags(ctx context.Context, conversationIDs []primitive.ObjectID, tags []string) ([]*models.MessageGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.coll.Aggregate(ctx, groupByTagsPipeline(conversationIDs, tags))
	if err != nil {
		return nil, fmt.Errorf("failed to group messages by tags: %w", err)
	}

	groups := []*models.MessageGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode message groups: %w", err)
	}
	return groups, nil
}

func (s *MessageStore) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var msg models.Message
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&msg); err != nil {
		return nil, err
	}
	return normalize(&msg), nil
}

func taggedFilter(conversationIDs []primitive.ObjectID, tags []string) bson.M {
	return bson.M{
		"conversationId": bson.M{"$in": conversationIDs},
		"deleted":        false,
		"tags":           bson.M{"$in": tags},
	}
}

func groupByTagsPipeline(conversationIDs []primitive.ObjectID, tags []string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: taggedFilter(conversationIDs, tags)}},
		{{Key: "$project", Value: bson.M{
			"text":           1,
			"senderId":       1,
			"conversationId": 1,
			"matched": bson.M{"$filter": bson.M{
				"input": "$tags",
				"as":    "tag",
				"cond":  bson.M{"$in": bson.A{"$$tag", tags}},
			}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$matched",
			"conversationId": bson.M{"$first": "$conversationId"},
			"messages": bson.M{"$push": bson.M{
				"text":     "$text",
				"senderId": "$senderId",
			}},
		}}},
	}
}

// normalize makes a missing tags field decode as an empty list.
func normalize(msg *models.Message) *models.Message {
	if msg.Tags == nil {
		msg.Tags = []string{}
	}
	return msg
}
