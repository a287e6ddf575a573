package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Defaults applied to a new idea when the caller leaves the field out
const (
	DefaultIdeaColor     = "yellow"
	DefaultIdeaPositionX = 100.0
	DefaultIdeaPositionY = 100.0
	DefaultIdeaWidth     = 200.0
	DefaultIdeaHeight    = 150.0
)

// Idea is a single sticky note positioned on a board canvas
type Idea struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Description *string    `json:"description" db:"description" gorm:"type:varchar(500)"`
	Color       string     `json:"color" db:"color" gorm:"type:varchar(20);not null"`
	PositionX   float64    `json:"position_x" db:"position_x" gorm:"not null"`
	PositionY   float64    `json:"position_y" db:"position_y" gorm:"not null"`
	Width       float64    `json:"width" db:"width" gorm:"not null"`
	Height      float64    `json:"height" db:"height" gorm:"not null"`
	Rotation    float64    `json:"rotation" db:"rotation" gorm:"not null"`
	Votes       int        `json:"votes" db:"votes" gorm:"not null;check:chk_ideas_votes_non_negative,votes >= 0"`
	BoardID     *uuid.UUID `json:"board_id" db:"board_id" gorm:"type:uuid;index:idx_ideas_board_id"`
	GroupID     *uuid.UUID `json:"group_id" db:"group_id" gorm:"type:uuid;index:idx_ideas_group_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" gorm:"not null;index:idx_ideas_created_at"`

	Tags []Tag `json:"tags" gorm:"many2many:idea_tags;constraint:OnDelete:CASCADE"`
}

func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = NewID()
	}
	return nil
}

// TagIDs returns the ids of the tags currently loaded on the idea.
func (i Idea) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(i.Tags))
	for _, tag := range i.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
