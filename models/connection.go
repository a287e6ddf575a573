package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionType describes how the source idea relates to the target idea
type ConnectionType string

const (
	ConnectionRelatesTo   ConnectionType = "relates_to"
	ConnectionDependsOn   ConnectionType = "depends_on"
	ConnectionContradicts ConnectionType = "contradicts"
)

var ConnectionTypes = []ConnectionType{ConnectionRelatesTo, ConnectionDependsOn, ConnectionContradicts}

func (c ConnectionType) Valid() bool {
	for _, t := range ConnectionTypes {
		if c == t {
			return true
		}
	}
	return false
}

// IdeaConnection is a typed, directed link between two distinct ideas.
// At most one connection exists per ordered (source, target) pair.
type IdeaConnection struct {
	ID             uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	SourceID       uuid.UUID      `json:"source_id" db:"source_id" gorm:"type:uuid;not null;uniqueIndex:idx_idea_connections_pair,priority:1"`
	TargetID       uuid.UUID      `json:"target_id" db:"target_id" gorm:"type:uuid;not null;uniqueIndex:idx_idea_connections_pair,priority:2;check:chk_idea_connections_no_self,source_id <> target_id"`
	Label          *string        `json:"label" db:"label" gorm:"type:varchar(50)"`
	ConnectionType ConnectionType `json:"connection_type" db:"connection_type" gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at" gorm:"not null;index:idx_idea_connections_created_at"`

	Source *Idea `json:"-" gorm:"foreignKey:SourceID;references:ID;constraint:OnDelete:CASCADE"`
	Target *Idea `json:"-" gorm:"foreignKey:TargetID;references:ID;constraint:OnDelete:CASCADE"`
}

func (c *IdeaConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = NewID()
	}
	return nil
}
