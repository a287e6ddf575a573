package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/ideaboard-backend/database"
	"github.com/rpupo63/ideaboard-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newHealthHandler(database database.Database) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

func (h healthHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{"message": "Idea board API is running!"})
	}
}

// health reports healthy when the database answers a ping
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("Database ping failed")
			apiErr := errs.NewApiErr(http.StatusServiceUnavailable, "database unreachable")
			apiErr.Cause = err
			h.responder.WriteError(w, apiErr)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "healthy"})
	}
}
