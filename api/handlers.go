package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, advisor *services.Advisor) *routeHandlers {
	return &routeHandlers{
		healthHandler:     newHealthHandler(database),
		boardHandler:      newBoardHandler(database.BoardRepo()),
		ideaHandler:       newIdeaHandler(database.IdeaRepo()),
		tagHandler:        newTagHandler(database.TagRepo()),
		groupHandler:      newGroupHandler(database.GroupRepo()),
		connectionHandler: newConnectionHandler(database.ConnectionRepo()),
		aiHandler:         newAIHandler(advisor, database.BoardRepo(), database.TagRepo()),
	}
}

// urlID parses the named chi path parameter as a UUID
func urlID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + param)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + param)
	}
	return id, nil
}

// queryID parses an optional UUID query parameter. An absent parameter yields nil.
func queryID(r *http.Request, param string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.NewInvalidFieldError(param, "must be a UUID")
	}
	return &id, nil
}

// queryIDs parses a UUID list given either as repeated parameters or comma separated
func queryIDs(r *http.Request, param string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, value := range r.URL.Query()[param] {
		for _, raw := range strings.Split(value, ",") {
			if raw = strings.TrimSpace(raw); raw == "" {
				continue
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, errs.NewInvalidFieldError(param, "must be a list of UUIDs")
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
