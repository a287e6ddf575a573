package database_test

import (
	"testing"

	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepo(t *testing.T) {
	f := newFixture(t)
	urgent := f.tag("urgent")
	f.tag("backend")

	t.Run("DuplicateNameConflicts", func(t *testing.T) {
		err := f.db.TagRepo().Add(f.ctx, &models.Tag{Name: "urgent", Color: "#ff0000"})
		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.Equal(t, "Tag with this name already exists", err.Error())
	})

	t.Run("ListedByName", func(t *testing.T) {
		tags, err := f.db.TagRepo().FindAll(f.ctx)
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "backend", tags[0].Name)
		assert.Equal(t, "urgent", tags[1].Name)

		names, err := f.db.TagRepo().Names(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"backend", "urgent"}, names)
	})

	t.Run("DeleteDetachesFromIdeas", func(t *testing.T) {
		idea := f.idea("Fix login", nil, urgent.ID)
		require.NoError(t, f.db.TagRepo().Delete(f.ctx, urgent.ID))

		loaded, err := f.db.IdeaRepo().FindByID(f.ctx, idea.ID)
		require.NoError(t, err)
		assert.Empty(t, loaded.Tags)

		_, err = f.db.TagRepo().FindByID(f.ctx, urgent.ID)
		assert.True(t, errs.IsNotFound(err))
		assert.True(t, errs.IsNotFound(f.db.TagRepo().Delete(f.ctx, urgent.ID)))
	})

	t.Run("NameReusableAfterDelete", func(t *testing.T) {
		f.tag("urgent")
	})
}
