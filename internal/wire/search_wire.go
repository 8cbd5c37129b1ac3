package wire

import (
	"gifboard/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	r.Get("/search", searchHandler.Search)
}
