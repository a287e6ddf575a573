package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultBoardColor = "#3b82f6"

// Board is the top-level container for a canvas of ideas and groups
type Board struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Description *string   `json:"description" db:"description" gorm:"type:varchar(500)"`
	Color       string    `json:"color" db:"color" gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;index:idx_boards_created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`

	Ideas  []Idea      `json:"-" gorm:"foreignKey:BoardID;references:ID;constraint:OnDelete:CASCADE"`
	Groups []IdeaGroup `json:"-" gorm:"foreignKey:BoardID;references:ID;constraint:OnDelete:CASCADE"`
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = NewID()
	}
	return nil
}
