package models

import "github.com/google/uuid"

// NewID returns a time-ordered identifier so that ordering by id follows creation order.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// All returns every persisted model in dependency order.
func All() []any {
	return []any{
		&Board{},
		&Tag{},
		&IdeaGroup{},
		&Idea{},
		&IdeaConnection{},
	}
}
