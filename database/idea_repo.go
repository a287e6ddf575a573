package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"gorm.io/gorm"
)

// IdeaFilter narrows FindAll. A nil BoardID matches every board. TagIDs uses
// AND semantics: an idea must carry all of them.
type IdeaFilter struct {
	BoardID *uuid.UUID
	TagIDs  []uuid.UUID
}

type IdeaRepo struct {
	db *gorm.DB
}

func NewIdeaRepo(db *gorm.DB) *IdeaRepo {
	return &IdeaRepo{db}
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") })
}

// FindAll returns ideas matching the filter ordered by creation time, with tags loaded
func (r *IdeaRepo) FindAll(ctx context.Context, filter IdeaFilter) ([]models.Idea, error) {
	query := preloadTags(r.db.WithContext(ctx)).Model(&models.Idea{})

	if filter.BoardID != nil {
		query = query.Where("ideas.board_id = ?", *filter.BoardID)
	}

	if tagIDs := uniqueIDs(filter.TagIDs); len(tagIDs) > 0 {
		tagged := r.db.WithContext(ctx).
			Table(models.IdeaTagsTable).
			Select("idea_id").
			Where("tag_id IN ?", tagIDs).
			Group("idea_id").
			Having("COUNT(DISTINCT tag_id) = ?", len(tagIDs))
		query = query.Where("ideas.id IN (?)", tagged)
	}

	var ideas []models.Idea
	if err := query.Order("ideas.created_at, ideas.id").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// FindByID returns an idea with its tags
func (r *IdeaRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	return findIdea(preloadTags(r.db.WithContext(ctx)), id)
}

func findIdea(db *gorm.DB, id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	if err := db.Where("id = ?", id).First(&idea).Error; err != nil {
		return nil, notFound(err, "Idea not found")
	}
	return &idea, nil
}

// Add inserts the idea and links the given tags. Tag ids that do not resolve
// to an existing tag are skipped. A board id that does not resolve fails the insert.
func (r *IdeaRepo) Add(ctx context.Context, idea *models.Idea, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if idea.BoardID != nil {
			if err := requireBoard(tx, *idea.BoardID); err != nil {
				return err
			}
		}

		idea.Tags = nil
		if err := tx.Omit("Tags").Create(idea).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, idea, tagIDs); err != nil {
			return err
		}

		created, err := findIdea(preloadTags(tx), idea.ID)
		if err != nil {
			return err
		}
		*idea = *created
		return nil
	})
}

// UpdatePosition moves the idea on the canvas
func (r *IdeaRepo) UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) (*models.Idea, error) {
	return r.update(ctx, id, map[string]any{"position_x": x, "position_y": y})
}

// UpdateSize resizes the idea
func (r *IdeaRepo) UpdateSize(ctx context.Context, id uuid.UUID, width, height float64) (*models.Idea, error) {
	return r.update(ctx, id, map[string]any{"width": width, "height": height})
}

// UpdateContent replaces title and description. A nil description clears it.
func (r *IdeaRepo) UpdateContent(ctx context.Context, id uuid.UUID, title string, description *string) (*models.Idea, error) {
	return r.update(ctx, id, map[string]any{"title": title, "description": description})
}

func (r *IdeaRepo) update(ctx context.Context, id uuid.UUID, changes map[string]any) (*models.Idea, error) {
	var updated *models.Idea
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		idea, err := findIdea(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(idea).Updates(changes).Error; err != nil {
			return err
		}
		updated, err = findIdea(preloadTags(tx), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ReplaceTags sets the idea's tags to exactly the given set. Unknown tag ids are skipped.
func (r *IdeaRepo) ReplaceTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) (*models.Idea, error) {
	var updated *models.Idea
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		idea, err := findIdea(tx, id)
		if err != nil {
			return err
		}
		if err := replaceTags(tx, idea, tagIDs); err != nil {
			return err
		}
		updated, err = findIdea(preloadTags(tx), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func replaceTags(tx *gorm.DB, idea *models.Idea, tagIDs []uuid.UUID) error {
	var tags []models.Tag
	if ids := uniqueIDs(tagIDs); len(ids) > 0 {
		if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
			return err
		}
	}

	association := tx.Model(idea).Association("Tags")
	if len(tags) == 0 {
		return association.Clear()
	}
	return association.Replace(tags)
}

// Vote increments the idea's vote count by one. The increment happens in a
// single statement so concurrent votes are never lost.
func (r *IdeaRepo) Vote(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Idea{}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFoundError("Idea not found")
	}
	return r.FindByID(ctx, id)
}

// Delete removes the idea, its tag links and every connection it takes part in
func (r *IdeaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		idea, err := findIdea(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+models.IdeaTagsTable+" WHERE idea_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("source_id = ? OR target_id = ?", id, id).Delete(&models.IdeaConnection{}).Error; err != nil {
			return err
		}
		return tx.Delete(idea).Error
	})
}

func requireBoard(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&models.Board{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFoundError("Board not found")
	}
	return nil
}
