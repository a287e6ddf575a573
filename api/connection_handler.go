package api

import (
	"net/http"

	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type connectionHandler struct {
	responder      Responder
	logger         zerolog.Logger
	connectionRepo *database.ConnectionRepo
}

func newConnectionHandler(connectionRepo *database.ConnectionRepo) connectionHandler {
	logger := log.With().Str("handlerName", "connectionHandler").Logger()

	return connectionHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		connectionRepo: connectionRepo,
	}
}

// getAllConnections lists connections. With board_id, only connections whose
// source idea is on that board are returned.
// @Router /connections [get]
func (h connectionHandler) getAllConnections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := queryID(r, "board_id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		connections, err := h.connectionRepo.FindAll(r.Context(), boardID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "connections", err))
			return
		}

		h.responder.WriteJSON(w, connections)
	}
}

// @Router /connections/{connectionID} [get]
func (h connectionHandler) getConnection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connectionID, err := urlID(r, "connectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		connection, err := h.connectionRepo.FindByID(r.Context(), connectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "connection", err))
			return
		}

		h.responder.WriteJSON(w, connection)
	}
}

// createConnection links two distinct ideas
// @Summary Create connection
// @Tags Connections
// @Accept json
// @Produce json
// @Param connection body createConnectionPayload true "Connection data"
// @Success 201 {object} models.IdeaConnection "Created connection"
// @Failure 400 {object} ErrorResponse "Bad Request - Self connection or invalid connection_type"
// @Failure 404 {object} ErrorResponse "Not Found - Source or target idea not found"
// @Failure 409 {object} ErrorResponse "Conflict - Connection between these ideas already exists"
// @Router /connections [post]
func (h connectionHandler) createConnection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createConnectionPayload
		if err := decodePayload(w, r, h.logger, "connection", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := payload.checkEndpoints(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		connection := payload.toModel()
		if err := h.connectionRepo.Add(r.Context(), &connection); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "connection", err))
			return
		}

		h.responder.WriteCreated(w, connection)
	}
}

// updateConnection changes the label and/or type. A null label clears it.
// @Router /connections/{connectionID} [patch]
func (h connectionHandler) updateConnection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connectionID, err := urlID(r, "connectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload updateConnectionPayload
		if err := decodePayload(w, r, h.logger, "connection update", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		changes, err := payload.changes()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		connection, err := h.connectionRepo.Update(r.Context(), connectionID, changes)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "connection", err))
			return
		}

		h.responder.WriteJSON(w, connection)
	}
}

// @Router /connections/{connectionID} [delete]
func (h connectionHandler) deleteConnection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connectionID, err := urlID(r, "connectionID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.connectionRepo.Delete(r.Context(), connectionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "connection", err))
			return
		}

		h.responder.WriteJSON(w, deleted("Connection deleted"))
	}
}
