package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Defaults applied to a new group when the caller leaves the field out
const (
	DefaultGroupColor     = "#6b7280"
	DefaultGroupPositionX = 0.0
	DefaultGroupPositionY = 0.0
	DefaultGroupWidth     = 400.0
	DefaultGroupHeight    = 300.0
)

// IdeaGroup is a collapsible spatial cluster of ideas. Deleting a group
// releases its ideas instead of deleting them.
type IdeaGroup struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string     `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Color       string     `json:"color" db:"color" gorm:"type:varchar(20);not null"`
	BoardID     *uuid.UUID `json:"board_id" db:"board_id" gorm:"type:uuid;index:idx_idea_groups_board_id"`
	PositionX   float64    `json:"position_x" db:"position_x" gorm:"not null"`
	PositionY   float64    `json:"position_y" db:"position_y" gorm:"not null"`
	Width       float64    `json:"width" db:"width" gorm:"not null"`
	Height      float64    `json:"height" db:"height" gorm:"not null"`
	IsCollapsed bool       `json:"is_collapsed" db:"is_collapsed" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" gorm:"not null"`

	Ideas []Idea `json:"-" gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:SET NULL"`
}

func (g *IdeaGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = NewID()
	}
	return nil
}

// IdeaIDs returns the ids of the member ideas currently loaded on the group
func (g IdeaGroup) IdeaIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.Ideas))
	for _, idea := range g.Ideas {
		ids = append(ids, idea.ID)
	}
	return ids
}
