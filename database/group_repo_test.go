package database_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepoMembership(t *testing.T) {
	f := newFixture(t)
	board := f.board("Sprint")
	a := f.idea("A", &board.ID)
	b := f.idea("B", &board.ID)
	c := f.idea("C", &board.ID)

	group := f.group("Cluster", &board.ID, a.ID, models.NewID())
	assert.Equal(t, []uuid.UUID{a.ID}, group.IdeaIDs())

	t.Run("AddIdeas", func(t *testing.T) {
		updated, err := f.db.GroupRepo().AddIdeas(f.ctx, group.ID, []uuid.UUID{b.ID, c.ID, b.ID})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, updated.IdeaIDs())
	})

	t.Run("RemoveIdea", func(t *testing.T) {
		updated, err := f.db.GroupRepo().RemoveIdea(f.ctx, group.ID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a.ID, c.ID}, updated.IdeaIDs())

		idea, err := f.db.IdeaRepo().FindByID(f.ctx, b.ID)
		require.NoError(t, err)
		assert.Nil(t, idea.GroupID)
	})

	t.Run("RemoveNonMember", func(t *testing.T) {
		_, err := f.db.GroupRepo().RemoveIdea(f.ctx, group.ID, b.ID)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
		assert.Equal(t, "Idea not found in this group", err.Error())
	})

	t.Run("MissingGroup", func(t *testing.T) {
		_, err := f.db.GroupRepo().AddIdeas(f.ctx, models.NewID(), []uuid.UUID{a.ID})
		require.Error(t, err)
		assert.Equal(t, "Group not found", err.Error())
	})
}

func TestGroupRepoUpdate(t *testing.T) {
	f := newFixture(t)
	group := f.group("Cluster", nil)

	updated, err := f.db.GroupRepo().Update(f.ctx, group.ID, map[string]any{"is_collapsed": true})
	require.NoError(t, err)
	assert.True(t, updated.IsCollapsed)
	assert.Equal(t, "Cluster", updated.Name)

	moved, err := f.db.GroupRepo().UpdatePosition(f.ctx, group.ID, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10.0, moved.PositionX)
	assert.Equal(t, 20.0, moved.PositionY)
	assert.True(t, moved.IsCollapsed)

	resized, err := f.db.GroupRepo().UpdateSize(f.ctx, group.ID, 600, 450)
	require.NoError(t, err)
	assert.Equal(t, 600.0, resized.Width)
	assert.Equal(t, 450.0, resized.Height)

	unchanged, err := f.db.GroupRepo().Update(f.ctx, group.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 600.0, unchanged.Width)
}

func TestGroupRepoFindAll(t *testing.T) {
	f := newFixture(t)
	sprint := f.board("Sprint")
	other := f.board("Other")
	first := f.group("First", &sprint.ID)
	f.group("Elsewhere", &other.ID)
	second := f.group("Second", &sprint.ID)

	groups, err := f.db.GroupRepo().FindAll(f.ctx, &sprint.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, first.ID, groups[0].ID)
	assert.Equal(t, second.ID, groups[1].ID)

	all, err := f.db.GroupRepo().FindAll(f.ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGroupRepoDeleteReleasesIdeas(t *testing.T) {
	f := newFixture(t)
	board := f.board("Sprint")
	a := f.idea("A", &board.ID)
	group := f.group("Cluster", &board.ID, a.ID)

	require.NoError(t, f.db.GroupRepo().Delete(f.ctx, group.ID))

	idea, err := f.db.IdeaRepo().FindByID(f.ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, idea.GroupID)

	_, err = f.db.GroupRepo().FindByID(f.ctx, group.ID)
	assert.True(t, errs.IsNotFound(err))
}
