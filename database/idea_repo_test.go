package database_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ideaTitles(ideas []models.Idea) []string {
	titles := make([]string, 0, len(ideas))
	for _, idea := range ideas {
		titles = append(titles, idea.Title)
	}
	return titles
}

func TestIdeaRepoAdd(t *testing.T) {
	f := newFixture(t)
	board := f.board("Sprint")
	zeta := f.tag("zeta")
	alpha := f.tag("alpha")

	t.Run("LinksKnownTagsSortedByName", func(t *testing.T) {
		idea := f.idea("Dark mode", &board.ID, zeta.ID, models.NewID(), alpha.ID, zeta.ID)

		assert.Equal(t, 0, idea.Votes)
		require.Len(t, idea.Tags, 2)
		assert.Equal(t, "alpha", idea.Tags[0].Name)
		assert.Equal(t, "zeta", idea.Tags[1].Name)
	})

	t.Run("MissingBoard", func(t *testing.T) {
		missing := models.NewID()
		err := f.db.IdeaRepo().Add(f.ctx, &models.Idea{Title: "Orphan", Color: "yellow", BoardID: &missing}, nil)
		require.Error(t, err)
		assert.Equal(t, "Board not found", err.Error())
		assert.Zero(t, f.count(&models.Idea{}, "title = ?", "Orphan"))
	})

	t.Run("WithoutBoard", func(t *testing.T) {
		idea := f.idea("Loose", nil)
		assert.Nil(t, idea.BoardID)
		assert.Empty(t, idea.Tags)
	})
}

func TestIdeaRepoFindAllFilters(t *testing.T) {
	f := newFixture(t)
	sprint := f.board("Sprint")
	other := f.board("Other")
	t1 := f.tag("t1")
	t2 := f.tag("t2")

	f.idea("Both", &sprint.ID, t1.ID, t2.ID)
	f.idea("OnlyT1", &sprint.ID, t1.ID)
	f.idea("Elsewhere", &other.ID, t1.ID, t2.ID)
	f.idea("Untagged", &sprint.ID)

	tests := []struct {
		name   string
		filter database.IdeaFilter
		want   []string
	}{
		{"NoFilter", database.IdeaFilter{}, []string{"Both", "OnlyT1", "Elsewhere", "Untagged"}},
		{"Board", database.IdeaFilter{BoardID: &sprint.ID}, []string{"Both", "OnlyT1", "Untagged"}},
		{"SingleTag", database.IdeaFilter{TagIDs: []uuid.UUID{t1.ID}}, []string{"Both", "OnlyT1", "Elsewhere"}},
		{"AllTagsRequired", database.IdeaFilter{BoardID: &sprint.ID, TagIDs: []uuid.UUID{t1.ID, t2.ID}}, []string{"Both"}},
		{"DuplicateTagIDs", database.IdeaFilter{BoardID: &sprint.ID, TagIDs: []uuid.UUID{t2.ID, t2.ID}}, []string{"Both"}},
		{"UnknownTag", database.IdeaFilter{TagIDs: []uuid.UUID{t1.ID, models.NewID()}}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ideas, err := f.db.IdeaRepo().FindAll(f.ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ideaTitles(ideas))
		})
	}
}

func TestIdeaRepoUpdates(t *testing.T) {
	f := newFixture(t)
	idea := f.idea("Draft", nil)

	moved, err := f.db.IdeaRepo().UpdatePosition(f.ctx, idea.ID, 320, 40.5)
	require.NoError(t, err)
	assert.Equal(t, 320.0, moved.PositionX)
	assert.Equal(t, 40.5, moved.PositionY)
	assert.Equal(t, models.DefaultIdeaWidth, moved.Width)

	resized, err := f.db.IdeaRepo().UpdateSize(f.ctx, idea.ID, 250, 180)
	require.NoError(t, err)
	assert.Equal(t, 250.0, resized.Width)
	assert.Equal(t, 180.0, resized.Height)
	assert.Equal(t, 320.0, resized.PositionX)

	edited, err := f.db.IdeaRepo().UpdateContent(f.ctx, idea.ID, "Final", ptr("details"))
	require.NoError(t, err)
	assert.Equal(t, "Final", edited.Title)
	require.NotNil(t, edited.Description)
	assert.Equal(t, "details", *edited.Description)

	cleared, err := f.db.IdeaRepo().UpdateContent(f.ctx, idea.ID, "Final", nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.Description)

	_, err = f.db.IdeaRepo().UpdatePosition(f.ctx, models.NewID(), 1, 1)
	assert.True(t, errs.IsNotFound(err))
}

func TestIdeaRepoReplaceTags(t *testing.T) {
	f := newFixture(t)
	t1 := f.tag("t1")
	t2 := f.tag("t2")
	idea := f.idea("Tagged", nil, t1.ID, t2.ID)

	updated, err := f.db.IdeaRepo().ReplaceTags(f.ctx, idea.ID, []uuid.UUID{t1.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{t1.ID}, updated.TagIDs())
	assert.Equal(t, int64(1), f.tagLinks(idea.ID))

	updated, err = f.db.IdeaRepo().ReplaceTags(f.ctx, idea.ID, []uuid.UUID{})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
	assert.Zero(t, f.tagLinks(idea.ID))

	_, err = f.db.IdeaRepo().ReplaceTags(f.ctx, models.NewID(), []uuid.UUID{t1.ID})
	assert.True(t, errs.IsNotFound(err))
}

func TestIdeaRepoVote(t *testing.T) {
	f := newFixture(t)
	idea := f.idea("Popular", nil)

	voted, err := f.db.IdeaRepo().Vote(f.ctx, idea.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, voted.Votes)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.db.IdeaRepo().Vote(f.ctx, idea.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	loaded, err := f.db.IdeaRepo().FindByID(f.ctx, idea.ID)
	require.NoError(t, err)
	assert.Equal(t, 11, loaded.Votes)

	_, err = f.db.IdeaRepo().Vote(f.ctx, models.NewID())
	require.Error(t, err)
	assert.Equal(t, "Idea not found", err.Error())
}

func TestIdeaRepoDelete(t *testing.T) {
	f := newFixture(t)
	tag := f.tag("t1")
	a := f.idea("A", nil, tag.ID)
	b := f.idea("B", nil)
	f.connect(a.ID, b.ID)
	f.connect(b.ID, a.ID)

	require.NoError(t, f.db.IdeaRepo().Delete(f.ctx, a.ID))

	assert.Zero(t, f.tagLinks(a.ID))
	assert.Zero(t, f.count(&models.IdeaConnection{}, "1 = 1"))
	_, err := f.db.TagRepo().FindByID(f.ctx, tag.ID)
	assert.NoError(t, err)
	_, err = f.db.IdeaRepo().FindByID(f.ctx, b.ID)
	assert.NoError(t, err)

	assert.True(t, errs.IsNotFound(f.db.IdeaRepo().Delete(f.ctx, a.ID)))
}
