package wire

import (
	"net/http"

	"gifboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, requireAuth func(http.Handler) http.Handler) {
	r.Route("/comments", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /comments?gifId=abc or ?gifIds=a,b
		r.Get("/", commentHandler.List)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/", commentHandler.Create)
			// owner only, checked in the service
			r.Put("/{id}", commentHandler.Update)
			r.Delete("/{id}", commentHandler.Delete)
		})
	})
}
