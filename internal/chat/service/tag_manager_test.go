package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"msgtags/internal/chat/models"
	"msgtags/internal/chat/repository"
	"msgtags/internal/chat/repository/mocks"
	"msgtags/internal/common"
	"msgtags/internal/dbmysql"
	"msgtags/internal/metrics"
)

var actor = primitive.NewObjectID().Hex()

func newMemoryTagManager(t *testing.T) (TagManager, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewTagManager(repo, repository.NewNopTagAudit(), metrics.New(), discardLogger()), repo
}

func seed(t *testing.T, repo repository.MessageRepository, conversationID primitive.ObjectID, text string, tagList ...string) *models.Message {
	t.Helper()
	msg := &models.Message{
		ConversationID: conversationID,
		SenderID:       primitive.NewObjectID(),
		Text:           text,
		Tags:           tagList,
	}
	require.NoError(t, repo.Create(context.Background(), msg))
	return msg
}

func TestTagManager_AddTag(t *testing.T) {
	manager, repo := newMemoryTagManager(t)
	ctx := context.Background()
	msg := seed(t, repo, primitive.NewObjectID(), "hello")

	got, err := manager.AddTag(ctx, "a", actor, msg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Tags)

	got, err = manager.AddTag(ctx, "b", actor, msg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Tags)

	t.Run("idempotent", func(t *testing.T) {
		got, err := manager.AddTag(ctx, "a", actor, msg.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
	})

	t.Run("case sensitive", func(t *testing.T) {
		got, err := manager.AddTag(ctx, "A", actor, msg.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "A"}, got.Tags)
	})
}

func TestTagManager_RemoveTag(t *testing.T) {
	manager, repo := newMemoryTagManager(t)
	ctx := context.Background()
	msg := seed(t, repo, primitive.NewObjectID(), "hello", "a", "b", "c")

	got, err := manager.RemoveTag(ctx, "b", actor, msg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got.Tags)

	got, err = manager.RemoveTag(ctx, "zzz", actor, msg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got.Tags)

	empty := seed(t, repo, primitive.NewObjectID(), "no tags")
	got, err = manager.RemoveTag(ctx, "a", actor, empty.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
	assert.NotNil(t, got.Tags)
}

func TestTagManager_AddThenRemoveRestoresOrder(t *testing.T) {
	manager, repo := newMemoryTagManager(t)
	ctx := context.Background()
	msg := seed(t, repo, primitive.NewObjectID(), "hello", "x", "y")

	_, err := manager.AddTag(ctx, "z", actor, msg.ID.Hex())
	require.NoError(t, err)
	got, err := manager.RemoveTag(ctx, "z", actor, msg.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, got.Tags)
}

func TestTagManager_Errors(t *testing.T) {
	manager, _ := newMemoryTagManager(t)
	ctx := context.Background()
	missing := primitive.NewObjectID().Hex()

	_, err := manager.AddTag(ctx, "a", actor, missing)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = manager.RemoveTag(ctx, "a", actor, missing)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = manager.AddTag(ctx, "a", actor, "not-an-id")
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = manager.AddTag(ctx, "", actor, missing)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestTagManager_DeleteKeepsTags(t *testing.T) {
	manager, repo := newMemoryTagManager(t)
	ctx := context.Background()
	msg := seed(t, repo, primitive.NewObjectID(), "hello", "a")

	chat := NewChatService(repo, discardLogger())
	_, err := chat.DeleteMessage(ctx, msg.ID.Hex())
	require.NoError(t, err)

	got, err := manager.AddTag(ctx, "b", actor, msg.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestTagManager_ConcurrentAdds(t *testing.T) {
	manager, repo := newMemoryTagManager(t)
	msg := seed(t, repo, primitive.NewObjectID(), "hello")

	tagList := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, tag := range tagList {
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func(tag string) {
				defer wg.Done()
				_, err := manager.AddTag(context.Background(), tag, actor, msg.ID.Hex())
				assert.NoError(t, err)
			}(tag)
		}
	}
	wg.Wait()

	got, err := repo.FindByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, tagList, got.Tags)
}

func TestTagManager_SkipsWriteWhenUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	mockAudit := mocks.NewMockTagAuditRepository(ctrl)
	m := metrics.New()
	manager := NewTagManager(mockRepo, mockAudit, m, discardLogger())

	id := primitive.NewObjectID()
	stored := &models.Message{ID: id, Tags: []string{"a"}}

	mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil).Times(2)
	mockRepo.EXPECT().AddTag(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockRepo.EXPECT().RemoveTag(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	mockAudit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *dbmysql.TagEvent) error {
			assert.False(t, event.Changed)
			assert.Equal(t, actor, event.ActorID)
			assert.Equal(t, id.Hex(), event.MessageID)
			return nil
		}).
		Times(2)

	got, err := manager.AddTag(context.Background(), "a", actor, id.Hex())
	require.NoError(t, err)
	assert.Same(t, stored, got)

	_, err = manager.RemoveTag(context.Background(), "b", actor, id.Hex())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TagMutations.WithLabelValues("add", metrics.ResultUnchanged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TagMutations.WithLabelValues("remove", metrics.ResultUnchanged)))
}

func TestTagManager_UsesAtomicPrimitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	mockAudit := mocks.NewMockTagAuditRepository(ctrl)
	m := metrics.New()
	manager := NewTagManager(mockRepo, mockAudit, m, discardLogger())

	id := primitive.NewObjectID()
	mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Message{ID: id, Tags: []string{}}, nil)
	mockRepo.EXPECT().AddTag(gomock.Any(), id, "a").Return(&models.Message{ID: id, Tags: []string{"a"}}, nil)
	mockAudit.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *dbmysql.TagEvent) error {
			assert.True(t, event.Changed)
			assert.Equal(t, dbmysql.TagActionAdd, event.Action)
			return nil
		})

	got, err := manager.AddTag(context.Background(), "a", actor, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Tags)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TagMutations.WithLabelValues("add", metrics.ResultChanged)))
}

func TestTagManager_AuditFailureIsNotReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	mockAudit := mocks.NewMockTagAuditRepository(ctrl)
	manager := NewTagManager(mockRepo, mockAudit, metrics.New(), discardLogger())

	id := primitive.NewObjectID()
	mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Message{ID: id, Tags: []string{"a"}}, nil)
	mockRepo.EXPECT().RemoveTag(gomock.Any(), id, "a").Return(&models.Message{ID: id, Tags: []string{}}, nil)
	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("mysql down"))

	got, err := manager.RemoveTag(context.Background(), "a", actor, id.Hex())
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestTagManager_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	m := metrics.New()
	manager := NewTagManager(mockRepo, nil, m, discardLogger())

	id := primitive.NewObjectID()
	mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Message{ID: id, Tags: []string{}}, nil)
	mockRepo.EXPECT().AddTag(gomock.Any(), id, "a").Return(nil, errors.New("write conflict"))

	_, err := manager.AddTag(context.Background(), "a", actor, id.Hex())
	assert.EqualError(t, err, "write conflict")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TagMutations.WithLabelValues("add", metrics.ResultError)))
}

func TestTagManager_TagHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	mockAudit := mocks.NewMockTagAuditRepository(ctrl)
	manager := NewTagManager(mockRepo, mockAudit, metrics.New(), discardLogger())

	id := primitive.NewObjectID()
	events := []*dbmysql.TagEvent{{ID: "e1", MessageID: id.Hex(), Tag: "a", Action: dbmysql.TagActionAdd}}

	mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Message{ID: id}, nil)
	mockAudit.EXPECT().ByMessageID(gomock.Any(), id.Hex(), 10).Return(events, nil)

	got, err := manager.TagHistory(context.Background(), id.Hex(), 10)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	missing := primitive.NewObjectID()
	mockRepo.EXPECT().FindByID(gomock.Any(), missing).Return(nil, common.NewNotFoundError("message", missing.Hex()))

	_, err = manager.TagHistory(context.Background(), missing.Hex(), 10)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
