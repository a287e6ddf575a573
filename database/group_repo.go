package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"gorm.io/gorm"
)

type GroupRepo struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) *GroupRepo {
	return &GroupRepo{db}
}

// preloadMembers loads only the ids of member ideas, enough to build idea_ids
func preloadMembers(db *gorm.DB) *gorm.DB {
	return db.Preload("Ideas", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "group_id").Order("created_at, id")
	})
}

// FindAll returns groups ordered by creation time, optionally limited to one board
func (r *GroupRepo) FindAll(ctx context.Context, boardID *uuid.UUID) ([]models.IdeaGroup, error) {
	query := preloadMembers(r.db.WithContext(ctx))
	if boardID != nil {
		query = query.Where("board_id = ?", *boardID)
	}

	var groups []models.IdeaGroup
	if err := query.Order("created_at, id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindByID returns a group with its member idea ids loaded
func (r *GroupRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.IdeaGroup, error) {
	return findGroup(preloadMembers(r.db.WithContext(ctx)), id)
}

func findGroup(db *gorm.DB, id uuid.UUID) (*models.IdeaGroup, error) {
	var group models.IdeaGroup
	if err := db.Where("id = ?", id).First(&group).Error; err != nil {
		return nil, notFound(err, "Group not found")
	}
	return &group, nil
}

// Add inserts the group and assigns the given ideas to it. Idea ids that do not
// resolve are skipped.
func (r *GroupRepo) Add(ctx context.Context, group *models.IdeaGroup, ideaIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if group.BoardID != nil {
			if err := requireBoard(tx, *group.BoardID); err != nil {
				return err
			}
		}

		group.Ideas = nil
		if err := tx.Omit("Ideas").Create(group).Error; err != nil {
			return err
		}
		if err := assignIdeas(tx, group.ID, ideaIDs); err != nil {
			return err
		}

		created, err := findGroup(preloadMembers(tx), group.ID)
		if err != nil {
			return err
		}
		*group = *created
		return nil
	})
}

// Update applies the given column changes, leaving the rest untouched
func (r *GroupRepo) Update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.IdeaGroup, error) {
	return r.inTx(ctx, id, func(tx *gorm.DB, group *models.IdeaGroup) error {
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(group).Updates(changes).Error
	})
}

// UpdatePosition moves the group on the canvas
func (r *GroupRepo) UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) (*models.IdeaGroup, error) {
	return r.Update(ctx, id, map[string]any{"position_x": x, "position_y": y})
}

// UpdateSize resizes the group
func (r *GroupRepo) UpdateSize(ctx context.Context, id uuid.UUID, width, height float64) (*models.IdeaGroup, error) {
	return r.Update(ctx, id, map[string]any{"width": width, "height": height})
}

// AddIdeas moves every existing idea among ideaIDs into the group
func (r *GroupRepo) AddIdeas(ctx context.Context, id uuid.UUID, ideaIDs []uuid.UUID) (*models.IdeaGroup, error) {
	return r.inTx(ctx, id, func(tx *gorm.DB, group *models.IdeaGroup) error {
		return assignIdeas(tx, group.ID, ideaIDs)
	})
}

// RemoveIdea releases one idea from the group. The idea must currently be a member.
func (r *GroupRepo) RemoveIdea(ctx context.Context, id, ideaID uuid.UUID) (*models.IdeaGroup, error) {
	return r.inTx(ctx, id, func(tx *gorm.DB, group *models.IdeaGroup) error {
		result := tx.Model(&models.Idea{}).
			Where("id = ? AND group_id = ?", ideaID, group.ID).
			Update("group_id", nil)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFoundError("Idea not found in this group")
		}
		return nil
	})
}

// Delete releases every member idea and removes the group
func (r *GroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := findGroup(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Idea{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
}

// inTx loads the group, runs fn and reloads the group with its members, all in one transaction
func (r *GroupRepo) inTx(ctx context.Context, id uuid.UUID, fn func(tx *gorm.DB, group *models.IdeaGroup) error) (*models.IdeaGroup, error) {
	var updated *models.IdeaGroup
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := findGroup(tx, id)
		if err != nil {
			return err
		}
		if err := fn(tx, group); err != nil {
			return err
		}
		updated, err = findGroup(preloadMembers(tx), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func assignIdeas(tx *gorm.DB, groupID uuid.UUID, ideaIDs []uuid.UUID) error {
	ids := uniqueIDs(ideaIDs)
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&models.Idea{}).Where("id IN ?", ids).Update("group_id", groupID).Error
}
