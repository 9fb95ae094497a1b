package http

import (
	"github.com/go-chi/chi/v5"

	"noteshare/internal/logging"
	"noteshare/internal/server/auth"
)

// NewRouter assembles the API surface. Auth endpoints are public, logout
// included: it is driven by the refresh token in the body, not a bearer
// access token.
func NewRouter(authHandler *AuthHandler, noteHandler *NoteHandler, tokens *auth.TokenService, logger logging.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(WithRequestLogging(logger))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/api/notes", func(r chi.Router) {
		r.Use(WithAuthentication(tokens))

		r.Post("/", noteHandler.Create)
		r.Get("/", noteHandler.List)

		r.Route("/{noteID}", func(r chi.Router) {
			r.Get("/", noteHandler.Get)
			r.Put("/", noteHandler.Update)
			r.Delete("/", noteHandler.Delete)

			r.Route("/collaborators", func(r chi.Router) {
				r.Post("/", noteHandler.AddCollaborator)
				r.Get("/", noteHandler.ListCollaborators)
				r.Delete("/{userID}", noteHandler.RemoveCollaborator)
			})
		})
	})

	return r
}
