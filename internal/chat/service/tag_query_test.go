package service

import (
	"context"
	"errors"
	"sort"
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
	"msgtags/internal/metrics"
)

// groupingRepo satisfies both MessageRepository and TagGrouper.
type groupingRepo struct {
	*mocks.MockMessageRepository
	*mocks.MockTagGrouper
}

// groupTexts flattens groups into key -> sorted member texts.
func groupTexts(groups []*models.MessageGroup) map[string][]string {
	out := make(map[string][]string, len(groups))
	for _, g := range groups {
		key := ""
		for i, k := range g.Key {
			if i > 0 {
				key += ","
			}
			key += k
		}
		texts := make([]string, 0, len(g.Messages))
		for _, m := range g.Messages {
			texts = append(texts, m.Text)
		}
		sort.Strings(texts)
		out[key] = texts
	}
	return out
}

func TestTagQueryEngine_Grouping(t *testing.T) {
	repo := repository.NewMemoryRepository()
	engine := NewTagQueryEngine(repo, metrics.New(), discardLogger())
	ctx := context.Background()

	c1, c2 := primitive.NewObjectID(), primitive.NewObjectID()
	seed(t, repo, c1, "only x", "tagx")
	seed(t, repo, c1, "only y", "tagy")
	seed(t, repo, c1, "y then x", "tagy", "tagx")
	seed(t, repo, c1, "x then y", "tagx", "tagy", "other")
	seed(t, repo, c1, "untagged")
	seed(t, repo, c1, "unrelated", "other")
	seed(t, repo, c2, "other conversation", "tagx")

	groups, err := engine.GetMessagesGroupedByTags(ctx, []string{c1.Hex()}, []string{"tagx", "tagy"})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"tagx":      {"only x"},
		"tagy":      {"only y"},
		"tagy,tagx": {"y then x"},
		"tagx,tagy": {"x then y"},
	}, groupTexts(groups))

	for _, g := range groups {
		assert.Equal(t, c1, g.ConversationID)
	}
}

func TestTagQueryEngine_SingleTag(t *testing.T) {
	repo := repository.NewMemoryRepository()
	engine := NewTagQueryEngine(repo, metrics.New(), discardLogger())
	ctx := context.Background()

	c1, c2 := primitive.NewObjectID(), primitive.NewObjectID()
	seed(t, repo, c1, "This message has tagx", "tagx")
	seed(t, repo, c1, "This message has tagy", "tagy")
	seed(t, repo, c2, "wrong conversation", "tagx")

	groups, err := engine.GetMessagesGroupedByTags(ctx, []string{c1.Hex()}, []string{"tagx"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"tagx"}, groups[0].Key)
	require.Len(t, groups[0].Messages, 1)
	assert.Equal(t, "This message has tagx", groups[0].Messages[0].Text)
}

func TestTagQueryEngine_MultipleConversations(t *testing.T) {
	repo := repository.NewMemoryRepository()
	engine := NewTagQueryEngine(repo, metrics.New(), discardLogger())

	c1, c2 := primitive.NewObjectID(), primitive.NewObjectID()
	seed(t, repo, c1, "first", "a")
	seed(t, repo, c2, "second", "a")

	groups, err := engine.GetMessagesGroupedByTags(context.Background(), []string{c1.Hex(), c2.Hex()}, []string{"a"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []string{"first", "second"}, groupTexts(groups)["a"])
}

func TestTagQueryEngine_ExcludesDeleted(t *testing.T) {
	repo := repository.NewMemoryRepository()
	engine := NewTagQueryEngine(repo, metrics.New(), discardLogger())
	ctx := context.Background()

	c1 := primitive.NewObjectID()
	seed(t, repo, c1, "kept", "a")
	gone := seed(t, repo, c1, "gone", "a")
	_, err := repo.MarkDeleted(ctx, gone.ID)
	require.NoError(t, err)

	groups, err := engine.GetMessagesGroupedByTags(ctx, []string{c1.Hex()}, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"a": {"kept"}}, groupTexts(groups))
}

func TestTagQueryEngine_EmptyInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no store call expected
	mockRepo := mocks.NewMockMessageRepository(ctrl)
	engine := NewTagQueryEngine(mockRepo, metrics.New(), discardLogger())

	groups, err := engine.GetMessagesGroupedByTags(context.Background(), nil, []string{"a"})
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)

	groups, err = engine.GetMessagesGroupedByTags(context.Background(), []string{primitive.NewObjectID().Hex()}, []string{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestTagQueryEngine_NoMatches(t *testing.T) {
	repo := repository.NewMemoryRepository()
	engine := NewTagQueryEngine(repo, metrics.New(), discardLogger())

	groups, err := engine.GetMessagesGroupedByTags(context.Background(), []string{primitive.NewObjectID().Hex()}, []string{"a"})
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestTagQueryEngine_InvalidInput(t *testing.T) {
	engine := NewTagQueryEngine(repository.NewMemoryRepository(), metrics.New(), discardLogger())

	_, err := engine.GetMessagesGroupedByTags(context.Background(), []string{"bad"}, []string{"a"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = engine.GetMessagesGroupedByTags(context.Background(), []string{primitive.NewObjectID().Hex()}, []string{""})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestTagQueryEngine_DelegatesToGrouper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := groupingRepo{
		MockMessageRepository: mocks.NewMockMessageRepository(ctrl),
		MockTagGrouper:        mocks.NewMockTagGrouper(ctrl),
	}
	m := metrics.New()
	engine := NewTagQueryEngine(repo, m, discardLogger())

	conv := primitive.NewObjectID()
	want := []*models.MessageGroup{{Key: []string{"a"}, ConversationID: conv}}

	repo.MockMessageRepository.EXPECT().FindTagged(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.MockTagGrouper.EXPECT().
		GroupByTags(gomock.Any(), []primitive.ObjectID{conv}, []string{"a"}).
		Return(want, nil)

	got, err := engine.GetMessagesGroupedByTags(context.Background(), []string{conv.Hex()}, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GroupedQueries.WithLabelValues("ok")))
}

func TestTagQueryEngine_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMessageRepository(ctrl)
	m := metrics.New()
	engine := NewTagQueryEngine(mockRepo, m, discardLogger())

	mockRepo.EXPECT().
		FindTagged(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := engine.GetMessagesGroupedByTags(context.Background(), []string{primitive.NewObjectID().Hex()}, []string{"a"})
	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GroupedQueries.WithLabelValues("error")))
}

func TestGroupMessages(t *testing.T) {
	conv := primitive.NewObjectID()
	candidates := []*models.Message{
		{ConversationID: conv, Text: "ab", Tags: []string{"a", "b"}},
		{ConversationID: conv, Text: "ab again", Tags: []string{"a", "c", "b"}},
		{ConversationID: conv, Text: "ba", Tags: []string{"b", "a"}},
		{ConversationID: conv, Text: "deleted", Tags: []string{"a"}, Deleted: true},
		{ConversationID: conv, Text: "none", Tags: []string{"c"}},
	}

	groups := GroupMessages(candidates, []string{"b", "a"})

	assert.Equal(t, map[string][]string{
		"a,b": {"ab", "ab again"},
		"b,a": {"ba"},
	}, groupTexts(groups))
}
