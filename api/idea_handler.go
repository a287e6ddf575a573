package api

import (
	"net/http"

	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ideaHandler struct {
	responder Responder
	logger    zerolog.Logger
	ideaRepo  *database.IdeaRepo
}

func newIdeaHandler(ideaRepo *database.IdeaRepo) ideaHandler {
	logger := log.With().Str("handlerName", "ideaHandler").Logger()

	return ideaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		ideaRepo:  ideaRepo,
	}
}

func withTags(idea models.Idea) models.Idea {
	if idea.Tags == nil {
		idea.Tags = []models.Tag{}
	}
	return idea
}

// getAllIdeas lists ideas, optionally filtered by board and by tags
// @Summary Get ideas
// @Description Ideas carrying every tag in tag_ids are returned. tag_ids may be repeated or comma separated.
// @Tags Ideas
// @Produce json
// @Param board_id query string false "Board ID" format(uuid)
// @Param tag_ids query []string false "Tag IDs"
// @Success 200 {array} models.Idea "List of ideas with tags"
// @Router /ideas [get]
func (h ideaHandler) getAllIdeas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := queryID(r, "board_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tagIDs, err := queryIDs(r, "tag_ids")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ideas, err := h.ideaRepo.FindAll(r.Context(), database.IdeaFilter{BoardID: boardID, TagIDs: tagIDs})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "ideas", err))
			return
		}

		response := make([]models.Idea, 0, len(ideas))
		for _, idea := range ideas {
			response = append(response, withTags(idea))
		}
		h.responder.WriteJSON(w, response)
	}
}

// getIdea retrieves one idea with its tags
// @Router /ideas/{ideaID} [get]
func (h ideaHandler) getIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea, err := h.ideaRepo.FindByID(r.Context(), ideaID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "idea", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*idea))
	}
}

// createIdea creates an idea, optionally on a board and with initial tags
// @Summary Create idea
// @Tags Ideas
// @Accept json
// @Produce json
// @Param idea body createIdeaPayload true "Idea data"
// @Success 201 {object} models.Idea "Created idea"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid idea data"
// @Failure 404 {object} ErrorResponse "Not Found - Board not found"
// @Router /ideas [post]
func (h ideaHandler) createIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createIdeaPayload
		if err := decodePayload(w, r, h.logger, "idea", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea := payload.toModel()
		if err := h.ideaRepo.Add(r.Context(), &idea, payload.TagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "idea", err))
			return
		}

		h.responder.WriteCreated(w, withTags(idea))
	}
}

// @Router /ideas/{ideaID}/position [patch]
func (h ideaHandler) updateIdeaPosition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload positionPayload
		if err := decodePayload(w, r, h.logger, "idea position", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea, err := h.ideaRepo.UpdatePosition(r.Context(), ideaID, *payload.PositionX, *payload.PositionY)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update position of", "idea", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*idea))
	}
}

// @Router /ideas/{ideaID}/size [patch]
func (h ideaHandler) updateIdeaSize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload sizePayload
		if err := decodePayload(w, r, h.logger, "idea size", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea, err := h.ideaRepo.UpdateSize(r.Context(), ideaID, *payload.Width, *payload.Height)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update size of", "idea", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*idea))
	}
}

// updateIdeaContent replaces both title and description. An omitted description clears it.
// @Router /ideas/{ideaID}/content [patch]
func (h ideaHandler) updateIdeaContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload ideaContentPayload
		if err := decodePayload(w, r, h.logger, "idea content", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea, err := h.ideaRepo.UpdateContent(r.Context(), ideaID, payload.Title, payload.Description)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update content of", "idea", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*idea))
	}
}

// updateIdeaTags replaces the idea's whole tag set
// @Router /ideas/{ideaID}/tags [patch]
func (h ideaHandler) updateIdeaTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload ideaTagsPayload
		if err := decodePayload(w, r, h.logger, "idea tags", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea, err := h.ideaRepo.ReplaceTags(r.Context(), ideaID, payload.TagIDs)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tags of", "idea", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*idea))
	}
}

// @Router /ideas/{ideaID}/vote [post]
func (h ideaHandler) voteIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		idea, err := h.ideaRepo.Vote(r.Context(), ideaID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("vote for", "idea", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*idea))
	}
}

// deleteIdea deletes an idea with its tag links and connections
// @Router /ideas/{ideaID} [delete]
func (h ideaHandler) deleteIdea() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.ideaRepo.Delete(r.Context(), ideaID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "idea", err))
			return
		}

		h.responder.WriteJSON(w, deleted("Idea deleted"))
	}
}
