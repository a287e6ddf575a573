package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultTagColor = "#6b7280"

// IdeaTagsTable is the junction table between ideas and tags
const IdeaTagsTable = "idea_tags"

// Tag is a globally unique label that can be attached to many ideas
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_name"`
	Color     string    `json:"color" db:"color" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = NewID()
	}
	return nil
}
