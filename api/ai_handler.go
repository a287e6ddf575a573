package api

import (
	"net/http"

	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rpupo63/ideaboard-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type aiHandler struct {
	responder Responder
	logger    zerolog.Logger
	advisor   *services.Advisor
	boardRepo *database.BoardRepo
	tagRepo   *database.TagRepo
}

func newAIHandler(advisor *services.Advisor, boardRepo *database.BoardRepo, tagRepo *database.TagRepo) aiHandler {
	logger := log.With().Str("handlerName", "aiHandler").Logger()

	return aiHandler{
		responder: NewResponder(logger),
		logger:    logger,
		advisor:   advisor,
		boardRepo: boardRepo,
		tagRepo:   tagRepo,
	}
}

// requireAdvisor wraps an AI endpoint so a missing credential is reported
// before the body is read or anything is loaded
func (h aiHandler) requireAdvisor(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.advisor.Available() {
			h.responder.WriteError(w, errs.NewAIUnavailableError())
			return
		}
		next(w, r)
	}
}

// suggestIdeas proposes three new idea titles for a board
// @Summary Suggest ideas
// @Tags AI
// @Accept json
// @Produce json
// @Success 200 {object} SuggestionsResponse "Suggested titles"
// @Failure 404 {object} ErrorResponse "Not Found - Board not found"
// @Failure 500 {object} ErrorResponse "AI service error"
// @Failure 503 {object} ErrorResponse "AI features not available"
// @Router /ai/suggestions [post]
func (h aiHandler) suggestIdeas() http.HandlerFunc {
	return h.requireAdvisor(func(w http.ResponseWriter, r *http.Request) {
		var payload boardRefPayload
		if err := decodePayload(w, r, h.logger, "suggestions", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		board, err := h.boardRepo.FindWithIdeas(r.Context(), payload.BoardID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "board", err))
			return
		}

		suggestions, err := h.advisor.Suggest(r.Context(), board.Name, board.Ideas)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, SuggestionsResponse{Suggestions: suggestions})
	})
}

// summarizeBoard describes a board's focus, themes and top priority
// @Router /ai/summarize [post]
func (h aiHandler) summarizeBoard() http.HandlerFunc {
	return h.requireAdvisor(func(w http.ResponseWriter, r *http.Request) {
		var payload boardRefPayload
		if err := decodePayload(w, r, h.logger, "summarize", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		board, err := h.boardRepo.FindWithIdeas(r.Context(), payload.BoardID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "board", err))
			return
		}

		summary, err := h.advisor.Summarize(r.Context(), board.Name, board.Ideas)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, summary)
	})
}

// @Router /ai/categorize [post]
func (h aiHandler) categorizeIdea() http.HandlerFunc {
	return h.requireAdvisor(func(w http.ResponseWriter, r *http.Request) {
		var payload categorizePayload
		if err := decodePayload(w, r, h.logger, "categorize", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.tagRepo.Names(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tags", err))
			return
		}

		tags, err := h.advisor.Categorize(r.Context(), payload.Title, payload.Description, existing)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CategorizeResponse{SuggestedTags: tags})
	})
}
