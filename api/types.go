package api

import (
	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler     healthHandler
	boardHandler      boardHandler
	ideaHandler       ideaHandler
	tagHandler        tagHandler
	groupHandler      groupHandler
	connectionHandler connectionHandler
	aiHandler         aiHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Board not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"name"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// MessageResponse confirms a successful delete
type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Board deleted"`
}

func deleted(message string) MessageResponse {
	return MessageResponse{Status: "success", Message: message}
}

// BoardResponse is a board with the number of ideas it currently owns
type BoardResponse struct {
	models.Board
	IdeaCount int64 `json:"idea_count"`
}

// GroupResponse is a group with the ids of its current member ideas
type GroupResponse struct {
	models.IdeaGroup
	IdeaIDs []uuid.UUID `json:"idea_ids"`
}

func newGroupResponse(group models.IdeaGroup) GroupResponse {
	return GroupResponse{IdeaGroup: group, IdeaIDs: group.IdeaIDs()}
}

// SuggestionsResponse lists proposed idea titles
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// CategorizeResponse lists proposed tag names
type CategorizeResponse struct {
	SuggestedTags []string `json:"suggested_tags"`
}
