package wire

import (
	"net/http"

	"gifboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, requireAuth func(http.Handler) http.Handler) {
	r.Route("/ratings", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", ratingHandler.List)
		r.Get("/stats", ratingHandler.Stats)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			// POST /ratings creates or replaces the caller's rating
			r.Post("/", ratingHandler.Upsert)
			r.Put("/{id}", ratingHandler.Update)
			r.Delete("/{id}", ratingHandler.Delete)
		})
	})
}
