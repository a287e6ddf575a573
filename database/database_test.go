package database_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rpupo63/ideaboard-backend/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture bundles a migrated database with helpers that insert rows directly
type fixture struct {
	t   *testing.T
	ctx context.Context
	gdb *gorm.DB
	db  database.Database
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testutil.NewDB(t)
	require.NoError(t, database.Migrate(gdb))
	return &fixture{t: t, ctx: context.Background(), gdb: gdb, db: database.New(gdb)}
}

func (f *fixture) board(name string) *models.Board {
	f.t.Helper()
	board := &models.Board{Name: name, Color: models.DefaultBoardColor}
	require.NoError(f.t, f.db.BoardRepo().Add(f.ctx, board))
	return board
}

func (f *fixture) idea(title string, boardID *uuid.UUID, tagIDs ...uuid.UUID) *models.Idea {
	f.t.Helper()
	idea := &models.Idea{
		Title:     title,
		Color:     models.DefaultIdeaColor,
		PositionX: models.DefaultIdeaPositionX,
		PositionY: models.DefaultIdeaPositionY,
		Width:     models.DefaultIdeaWidth,
		Height:    models.DefaultIdeaHeight,
		BoardID:   boardID,
	}
	require.NoError(f.t, f.db.IdeaRepo().Add(f.ctx, idea, tagIDs))
	return idea
}

func (f *fixture) tag(name string) *models.Tag {
	f.t.Helper()
	tag := &models.Tag{Name: name, Color: models.DefaultTagColor}
	require.NoError(f.t, f.db.TagRepo().Add(f.ctx, tag))
	return tag
}

func (f *fixture) group(name string, boardID *uuid.UUID, ideaIDs ...uuid.UUID) *models.IdeaGroup {
	f.t.Helper()
	group := &models.IdeaGroup{
		Name:    name,
		Color:   models.DefaultGroupColor,
		BoardID: boardID,
		Width:   models.DefaultGroupWidth,
		Height:  models.DefaultGroupHeight,
	}
	require.NoError(f.t, f.db.GroupRepo().Add(f.ctx, group, ideaIDs))
	return group
}

func (f *fixture) connect(source, target uuid.UUID) *models.IdeaConnection {
	f.t.Helper()
	connection := &models.IdeaConnection{SourceID: source, TargetID: target, ConnectionType: models.ConnectionRelatesTo}
	require.NoError(f.t, f.db.ConnectionRepo().Add(f.ctx, connection))
	return connection
}

func (f *fixture) count(model any, query string, args ...any) int64 {
	f.t.Helper()
	var n int64
	require.NoError(f.t, f.gdb.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func (f *fixture) tagLinks(ideaID uuid.UUID) int64 {
	f.t.Helper()
	var n int64
	require.NoError(f.t, f.gdb.Table(models.IdeaTagsTable).Where("idea_id = ?", ideaID).Count(&n).Error)
	return n
}

func ptr[T any](v T) *T { return &v }
