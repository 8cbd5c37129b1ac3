package wire

import (
	"net/http"

	"gifboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures the account routes; edits are limited to the caller.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, requireAuth func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})
	})
}
