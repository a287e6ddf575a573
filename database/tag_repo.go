package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/models"
	"gorm.io/gorm"
)

const duplicateTagMessage = "Tag with this name already exists"

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns every tag ordered by name
func (r *TagRepo) FindAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name, id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByID returns a tag by its ID
func (r *TagRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, notFound(err, "Tag not found")
	}
	return &tag, nil
}

// Names returns the names of all tags, ordered
func (r *TagRepo) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Add inserts a new tag. Names are unique across the whole system.
func (r *TagRepo) Add(ctx context.Context, tag *models.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Tag{}).Where("name = ?", tag.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConflictError(duplicateTagMessage)
		}
		return createTag(tx, tag)
	})
}

// createTag inserts the tag. The unique index on name catches a concurrent duplicate.
func createTag(tx *gorm.DB, tag *models.Tag) error {
	return conflict(tx.Create(tag).Error, duplicateTagMessage)
}

// Delete removes the tag and detaches it from every idea
func (r *TagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.Where("id = ?", id).First(&tag).Error; err != nil {
			return notFound(err, "Tag not found")
		}
		if err := tx.Exec("DELETE FROM "+models.IdeaTagsTable+" WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
