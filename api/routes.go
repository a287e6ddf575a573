package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes registers every endpoint of the idea board API
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.healthHandler.root())
	r.Get("/health", handlers.healthHandler.health())
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(RequestMetricsMiddleware)

		// Board Handler endpoints
		r.Route("/boards", func(r chi.Router) {
			r.Get("/", handlers.boardHandler.getAllBoards())
			r.Post("/", handlers.boardHandler.createBoard())
			r.Get("/{boardID}", handlers.boardHandler.getBoard())
			r.Patch("/{boardID}", handlers.boardHandler.updateBoard())
			r.Delete("/{boardID}", handlers.boardHandler.deleteBoard())
		})

		// Idea Handler endpoints
		r.Route("/ideas", func(r chi.Router) {
			r.Get("/", handlers.ideaHandler.getAllIdeas())
			r.Post("/", handlers.ideaHandler.createIdea())
			r.Get("/{ideaID}", handlers.ideaHandler.getIdea())
			r.Delete("/{ideaID}", handlers.ideaHandler.deleteIdea())
			r.Patch("/{ideaID}/position", handlers.ideaHandler.updateIdeaPosition())
			r.Patch("/{ideaID}/size", handlers.ideaHandler.updateIdeaSize())
			r.Patch("/{ideaID}/content", handlers.ideaHandler.updateIdeaContent())
			r.Patch("/{ideaID}/tags", handlers.ideaHandler.updateIdeaTags())
			r.Post("/{ideaID}/vote", handlers.ideaHandler.voteIdea())
		})

		// Tag Handler endpoints
		r.Route("/tags", func(r chi.Router) {
			r.Get("/", handlers.tagHandler.getAllTags())
			r.Post("/", handlers.tagHandler.createTag())
			r.Delete("/{tagID}", handlers.tagHandler.deleteTag())
		})

		// Group Handler endpoints
		r.Route("/groups", func(r chi.Router) {
			r.Get("/", handlers.groupHandler.getAllGroups())
			r.Post("/", handlers.groupHandler.createGroup())
			r.Get("/{groupID}", handlers.groupHandler.getGroup())
			r.Patch("/{groupID}", handlers.groupHandler.updateGroup())
			r.Delete("/{groupID}", handlers.groupHandler.deleteGroup())
			r.Patch("/{groupID}/position", handlers.groupHandler.updateGroupPosition())
			r.Patch("/{groupID}/size", handlers.groupHandler.updateGroupSize())
			r.Post("/{groupID}/ideas", handlers.groupHandler.addIdeasToGroup())
			r.Delete("/{groupID}/ideas/{ideaID}", handlers.groupHandler.removeIdeaFromGroup())
		})

		// Connection Handler endpoints
		r.Route("/connections", func(r chi.Router) {
			r.Get("/", handlers.connectionHandler.getAllConnections())
			r.Post("/", handlers.connectionHandler.createConnection())
			r.Get("/{connectionID}", handlers.connectionHandler.getConnection())
			r.Patch("/{connectionID}", handlers.connectionHandler.updateConnection())
			r.Delete("/{connectionID}", handlers.connectionHandler.deleteConnection())
		})

		// AI Handler endpoints
		r.Route("/ai", func(r chi.Router) {
			r.Post("/suggestions", handlers.aiHandler.suggestIdeas())
			r.Post("/summarize", handlers.aiHandler.summarizeBoard())
			r.Post("/categorize", handlers.aiHandler.categorizeIdea())
		})
	})
}
