package models_test

import (
	"testing"

	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rpupo63/ideaboard-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnDrift(t *testing.T) {
	t.Run("NoTablesYet", func(t *testing.T) {
		db := testutil.NewDB(t)

		drift, err := models.ColumnDrift(db)
		require.NoError(t, err)
		assert.Empty(t, drift)
	})

	t.Run("FreshSchemaHasNoDrift", func(t *testing.T) {
		db := testutil.NewDB(t)
		require.NoError(t, db.AutoMigrate(models.All()...))

		drift, err := models.ColumnDrift(db)
		require.NoError(t, err)
		assert.Empty(t, drift)
	})

	t.Run("ReportsUnmappedColumns", func(t *testing.T) {
		db := testutil.NewDB(t)
		require.NoError(t, db.AutoMigrate(models.All()...))
		require.NoError(t, db.Exec("ALTER TABLE ideas ADD COLUMN legacy_priority integer").Error)

		drift, err := models.ColumnDrift(db)
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"ideas": {"legacy_priority"}}, drift)
	})
}

func TestIDsAreAssignedOnCreate(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.AutoMigrate(models.All()...))

	first := models.Board{Name: "First", Color: models.DefaultBoardColor}
	second := models.Board{Name: "Second", Color: models.DefaultBoardColor}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 7, int(first.ID.Version()))
	assert.Less(t, first.ID.String(), second.ID.String())
}

func TestConnectionTypeValid(t *testing.T) {
	for _, ct := range models.ConnectionTypes {
		assert.True(t, ct.Valid(), string(ct))
	}
	assert.False(t, models.ConnectionType("blocks").Valid())
	assert.False(t, models.ConnectionType("").Valid())
}
