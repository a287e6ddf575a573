package api

import (
	"net/http"

	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type boardHandler struct {
	responder Responder
	logger    zerolog.Logger
	boardRepo *database.BoardRepo
}

func newBoardHandler(boardRepo *database.BoardRepo) boardHandler {
	logger := log.With().Str("handlerName", "boardHandler").Logger()

	return boardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		boardRepo: boardRepo,
	}
}

// getAllBoards retrieves all boards with their idea counts
// @Summary Get all boards
// @Description Retrieves all boards ordered by creation time, each with the number of ideas it owns
// @Tags Boards
// @Produce json
// @Success 200 {array} BoardResponse "List of boards"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching boards"
// @Router /boards [get]
func (h boardHandler) getAllBoards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boards, counts, err := h.boardRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "boards", err))
			return
		}

		response := make([]BoardResponse, 0, len(boards))
		for _, board := range boards {
			response = append(response, BoardResponse{Board: board, IdeaCount: counts[board.ID]})
		}

		h.responder.WriteJSON(w, response)
	}
}

// getBoard retrieves a specific board by ID
// @Summary Get board
// @Description Retrieves a board by ID with its idea count
// @Tags Boards
// @Produce json
// @Param boardID path string true "Board ID" format(uuid)
// @Success 200 {object} BoardResponse "Board details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid boardID"
// @Failure 404 {object} ErrorResponse "Not Found - Board not found"
// @Router /boards/{boardID} [get]
func (h boardHandler) getBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := urlID(r, "boardID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		board, err := h.boardRepo.FindByID(r.Context(), boardID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "board", err))
			return
		}

		h.writeBoard(w, r, board)
	}
}

// createBoard creates a new board
// @Summary Create board
// @Tags Boards
// @Accept json
// @Produce json
// @Param board body createBoardPayload true "Board data"
// @Success 201 {object} BoardResponse "Created board"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid board data"
// @Router /boards [post]
func (h boardHandler) createBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createBoardPayload
		if err := decodePayload(w, r, h.logger, "board", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		board := payload.toModel()
		if err := h.boardRepo.Add(r.Context(), &board); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "board", err))
			return
		}

		h.responder.WriteCreated(w, BoardResponse{Board: board})
	}
}

// updateBoard applies a partial update to a board. Only the supplied fields change.
// @Summary Update board
// @Tags Boards
// @Accept json
// @Produce json
// @Param boardID path string true "Board ID" format(uuid)
// @Success 200 {object} BoardResponse "Updated board"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid board data"
// @Failure 404 {object} ErrorResponse "Not Found - Board not found"
// @Router /boards/{boardID} [patch]
func (h boardHandler) updateBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := urlID(r, "boardID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload updateBoardPayload
		if err := decodePayload(w, r, h.logger, "board update", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		changes, err := payload.changes()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		board, err := h.boardRepo.Update(r.Context(), boardID, changes)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "board", err))
			return
		}

		h.writeBoard(w, r, board)
	}
}

// deleteBoard deletes a board with its ideas and groups
// @Summary Delete board
// @Tags Boards
// @Produce json
// @Param boardID path string true "Board ID" format(uuid)
// @Success 200 {object} MessageResponse "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Board not found"
// @Router /boards/{boardID} [delete]
func (h boardHandler) deleteBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := urlID(r, "boardID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.boardRepo.Delete(r.Context(), boardID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "board", err))
			return
		}

		h.responder.WriteJSON(w, deleted("Board deleted"))
	}
}

// writeBoard responds with the board and its current idea count
func (h boardHandler) writeBoard(w http.ResponseWriter, r *http.Request, board *models.Board) {
	count, err := h.boardRepo.CountIdeas(r.Context(), board.ID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("count", "ideas", err))
		return
	}
	h.responder.WriteJSON(w, BoardResponse{Board: *board, IdeaCount: count})
}
