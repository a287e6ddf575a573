package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"gorm.io/gorm"
)

const duplicateConnectionMessage = "Connection between these ideas already exists"

type ConnectionRepo struct {
	db *gorm.DB
}

func NewConnectionRepo(db *gorm.DB) *ConnectionRepo {
	return &ConnectionRepo{db}
}

// FindAll returns connections ordered by creation time. When boardID is set only
// connections whose source idea sits on that board are returned.
func (r *ConnectionRepo) FindAll(ctx context.Context, boardID *uuid.UUID) ([]models.IdeaConnection, error) {
	query := r.db.WithContext(ctx).Model(&models.IdeaConnection{})
	if boardID != nil {
		query = query.
			Joins("JOIN ideas ON ideas.id = idea_connections.source_id").
			Where("ideas.board_id = ?", *boardID)
	}

	var connections []models.IdeaConnection
	err := query.
		Select("idea_connections.*").
		Order("idea_connections.created_at, idea_connections.id").
		Find(&connections).Error
	if err != nil {
		return nil, err
	}
	return connections, nil
}

// FindByID returns a connection by its ID
func (r *ConnectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.IdeaConnection, error) {
	return findConnection(r.db.WithContext(ctx), id)
}

func findConnection(db *gorm.DB, id uuid.UUID) (*models.IdeaConnection, error) {
	var connection models.IdeaConnection
	if err := db.Where("id = ?", id).First(&connection).Error; err != nil {
		return nil, notFound(err, "Connection not found")
	}
	return &connection, nil
}

// Add inserts a connection after checking that both ideas exist and that the
// ordered pair is not already connected
func (r *ConnectionRepo) Add(ctx context.Context, connection *models.IdeaConnection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireIdea(tx, connection.SourceID, "Source idea not found"); err != nil {
			return err
		}
		if err := requireIdea(tx, connection.TargetID, "Target idea not found"); err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.IdeaConnection{}).
			Where("source_id = ? AND target_id = ?", connection.SourceID, connection.TargetID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConflictError(duplicateConnectionMessage)
		}

		return createConnection(tx, connection)
	})
}

// createConnection inserts the connection. The unique pair index catches a concurrent duplicate.
func createConnection(tx *gorm.DB, connection *models.IdeaConnection) error {
	return conflict(tx.Omit("Source", "Target").Create(connection).Error, duplicateConnectionMessage)
}

// Update applies the given column changes, leaving the rest untouched
func (r *ConnectionRepo) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.IdeaConnection, error) {
	var updated *models.IdeaConnection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		connection, err := findConnection(tx, id)
		if err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(connection).Updates(changes).Error; err != nil {
				return err
			}
		}
		updated, err = findConnection(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a connection
func (r *ConnectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		connection, err := findConnection(tx, id)
		if err != nil {
			return err
		}
		return tx.Delete(connection).Error
	})
}

func requireIdea(tx *gorm.DB, id uuid.UUID, message string) error {
	var count int64
	if err := tx.Model(&models.Idea{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFoundError(message)
	}
	return nil
}
