package database_test

import (
	"testing"

	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRepoAdd(t *testing.T) {
	f := newFixture(t)
	a := f.idea("A", nil)
	b := f.idea("B", nil)
	f.connect(a.ID, b.ID)

	t.Run("DuplicatePairConflicts", func(t *testing.T) {
		err := f.db.ConnectionRepo().Add(f.ctx, &models.IdeaConnection{SourceID: a.ID, TargetID: b.ID, ConnectionType: models.ConnectionDependsOn})
		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.Equal(t, "Connection between these ideas already exists", err.Error())
	})

	t.Run("ReversePairAllowed", func(t *testing.T) {
		f.connect(b.ID, a.ID)
	})

	t.Run("MissingEndpoints", func(t *testing.T) {
		err := f.db.ConnectionRepo().Add(f.ctx, &models.IdeaConnection{SourceID: models.NewID(), TargetID: b.ID, ConnectionType: models.ConnectionRelatesTo})
		require.Error(t, err)
		assert.Equal(t, "Source idea not found", err.Error())

		err = f.db.ConnectionRepo().Add(f.ctx, &models.IdeaConnection{SourceID: a.ID, TargetID: models.NewID(), ConnectionType: models.ConnectionRelatesTo})
		require.Error(t, err)
		assert.Equal(t, "Target idea not found", err.Error())
	})
}

func TestConnectionRepoFindAllByBoard(t *testing.T) {
	f := newFixture(t)
	sprint := f.board("Sprint")
	other := f.board("Other")
	a := f.idea("A", &sprint.ID)
	b := f.idea("B", &sprint.ID)
	c := f.idea("C", &other.ID)

	first := f.connect(a.ID, b.ID)
	crossing := f.connect(a.ID, c.ID)
	incoming := f.connect(c.ID, a.ID)

	onSprint, err := f.db.ConnectionRepo().FindAll(f.ctx, &sprint.ID)
	require.NoError(t, err)
	require.Len(t, onSprint, 2)
	assert.Equal(t, first.ID, onSprint[0].ID)
	assert.Equal(t, crossing.ID, onSprint[1].ID)

	onOther, err := f.db.ConnectionRepo().FindAll(f.ctx, &other.ID)
	require.NoError(t, err)
	require.Len(t, onOther, 1)
	assert.Equal(t, incoming.ID, onOther[0].ID)

	all, err := f.db.ConnectionRepo().FindAll(f.ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestConnectionRepoUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	connection := f.connect(f.idea("A", nil).ID, f.idea("B", nil).ID)

	updated, err := f.db.ConnectionRepo().Update(f.ctx, connection.ID, map[string]any{
		"label":           "blocks",
		"connection_type": models.ConnectionDependsOn,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Label)
	assert.Equal(t, "blocks", *updated.Label)
	assert.Equal(t, models.ConnectionDependsOn, updated.ConnectionType)

	cleared, err := f.db.ConnectionRepo().Update(f.ctx, connection.ID, map[string]any{"label": nil})
	require.NoError(t, err)
	assert.Nil(t, cleared.Label)
	assert.Equal(t, models.ConnectionDependsOn, cleared.ConnectionType)

	require.NoError(t, f.db.ConnectionRepo().Delete(f.ctx, connection.ID))
	_, err = f.db.ConnectionRepo().FindByID(f.ctx, connection.ID)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, errs.IsNotFound(f.db.ConnectionRepo().Delete(f.ctx, connection.ID)))
}
