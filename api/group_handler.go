package api

import (
	"net/http"

	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type groupHandler struct {
	responder Responder
	logger    zerolog.Logger
	groupRepo *database.GroupRepo
}

func newGroupHandler(groupRepo *database.GroupRepo) groupHandler {
	logger := log.With().Str("handlerName", "groupHandler").Logger()

	return groupHandler{
		responder: NewResponder(logger),
		logger:    logger,
		groupRepo: groupRepo,
	}
}

// getAllGroups lists groups with their member idea ids
// @Summary Get groups
// @Tags Groups
// @Produce json
// @Param board_id query string false "Board ID" format(uuid)
// @Success 200 {array} GroupResponse "List of groups"
// @Router /groups [get]
func (h groupHandler) getAllGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := queryID(r, "board_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		groups, err := h.groupRepo.FindAll(r.Context(), boardID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "groups", err))
			return
		}

		response := make([]GroupResponse, 0, len(groups))
		for _, group := range groups {
			response = append(response, newGroupResponse(group))
		}
		h.responder.WriteJSON(w, response)
	}
}

// @Router /groups/{groupID} [get]
func (h groupHandler) getGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group, err := h.groupRepo.FindByID(r.Context(), groupID)
		h.writeGroup(w, "find", group, err)
	}
}

// createGroup creates a group and moves the listed ideas into it
// @Summary Create group
// @Tags Groups
// @Accept json
// @Produce json
// @Param group body createGroupPayload true "Group data"
// @Success 201 {object} GroupResponse "Created group"
// @Failure 404 {object} ErrorResponse "Not Found - Board not found"
// @Router /groups [post]
func (h groupHandler) createGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createGroupPayload
		if err := decodePayload(w, r, h.logger, "group", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group := payload.toModel()
		if err := h.groupRepo.Add(r.Context(), &group, payload.IdeaIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "group", err))
			return
		}

		h.responder.WriteCreated(w, newGroupResponse(group))
	}
}

// updateGroup applies a partial update. Only the supplied fields change.
// @Router /groups/{groupID} [patch]
func (h groupHandler) updateGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload updateGroupPayload
		if err := decodePayload(w, r, h.logger, "group update", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		changes, err := payload.changes()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group, err := h.groupRepo.Update(r.Context(), groupID, changes)
		h.writeGroup(w, "update", group, err)
	}
}

// @Router /groups/{groupID}/position [patch]
func (h groupHandler) updateGroupPosition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload positionPayload
		if err := decodePayload(w, r, h.logger, "group position", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group, err := h.groupRepo.UpdatePosition(r.Context(), groupID, *payload.PositionX, *payload.PositionY)
		h.writeGroup(w, "update position of", group, err)
	}
}

// @Router /groups/{groupID}/size [patch]
func (h groupHandler) updateGroupSize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload sizePayload
		if err := decodePayload(w, r, h.logger, "group size", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group, err := h.groupRepo.UpdateSize(r.Context(), groupID, *payload.Width, *payload.Height)
		h.writeGroup(w, "update size of", group, err)
	}
}

// addIdeasToGroup moves ideas into the group. Unknown idea ids are ignored.
// @Router /groups/{groupID}/ideas [post]
func (h groupHandler) addIdeasToGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload groupIdeasPayload
		if err := decodePayload(w, r, h.logger, "group ideas", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group, err := h.groupRepo.AddIdeas(r.Context(), groupID, payload.IdeaIDs)
		h.writeGroup(w, "add ideas to", group, err)
	}
}

// @Router /groups/{groupID}/ideas/{ideaID} [delete]
func (h groupHandler) removeIdeaFromGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		ideaID, err := urlID(r, "ideaID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		group, err := h.groupRepo.RemoveIdea(r.Context(), groupID, ideaID)
		h.writeGroup(w, "remove idea from", group, err)
	}
}

// deleteGroup releases the member ideas and deletes the group
// @Router /groups/{groupID} [delete]
func (h groupHandler) deleteGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := urlID(r, "groupID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.groupRepo.Delete(r.Context(), groupID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "group", err))
			return
		}

		h.responder.WriteJSON(w, deleted("Group deleted"))
	}
}

func (h groupHandler) writeGroup(w http.ResponseWriter, operation string, group *models.IdeaGroup, err error) {
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError(operation, "group", err))
		return
	}
	h.responder.WriteJSON(w, newGroupResponse(*group))
}
