package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskflow/model"
)

func TestPostUpdate_SplitsFreeTextIntoLines(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	svc := NewStatusFeedService(f, zap.NewNop())
	author := model.User{UID: "u-a", Name: "Alice"}

	id, err := svc.PostUpdate(ctx, "p-1", author, PostUpdateInput{
		Content:   "Shipped the draft",
		Type:      model.UpdateDaily,
		Blockers:  "A\nB\n\nC",
		NextSteps: "ship it\n",
	})
	require.NoError(t, err)

	require.Len(t, f.updates["p-1"], 1)
	update := f.updates["p-1"][0]
	assert.Equal(t, id, update.ID)
	assert.Equal(t, []string{"A", "B", "C"}, update.Blockers)
	assert.Equal(t, []string{"ship it"}, update.NextSteps)
	assert.Equal(t, author, update.Author)
	assert.Equal(t, "p-1", update.ProjectID)
}

func TestPostUpdate_RequiresContent(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	svc := NewStatusFeedService(f, zap.NewNop())

	_, err := svc.PostUpdate(ctx, "p-1", model.User{UID: "u-a"}, PostUpdateInput{Content: "   "})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Empty(t, f.updates["p-1"])
}

func TestPostUpdate_TypeDefaultsAndValidates(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	svc := NewStatusFeedService(f, zap.NewNop())
	author := model.User{UID: "u-a"}

	_, err := svc.PostUpdate(ctx, "p-1", author, PostUpdateInput{Content: "standup"})
	require.NoError(t, err)
	assert.Equal(t, model.UpdateDaily, f.updates["p-1"][0].Type)

	_, err = svc.PostUpdate(ctx, "p-1", author, PostUpdateInput{Content: "x", Type: "yearly"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestLatest_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	f := newFakeStore()
	svc := NewStatusFeedService(f, zap.NewNop())
	author := model.User{UID: "u-a"}

	for _, content := range []string{"one", "two", "three"} {
		_, err := svc.PostUpdate(ctx, "p-1", author, PostUpdateInput{Content: content})
		require.NoError(t, err)
	}

	updates, err := svc.Latest(ctx, "p-1", 2)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "three", updates[0].Content)
	assert.Equal(t, "two", updates[1].Content)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{}, SplitLines(""))
	assert.Equal(t, []string{"A", "B", "C"}, SplitLines("A\nB\n\nC"))
	assert.Equal(t, []string{"only"}, SplitLines("\n  \nonly\n"))
}
