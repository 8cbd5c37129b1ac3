package adaptor

import (
	"net/http"

	"gifboard/internal/dto/request"
	"gifboard/internal/usecase"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// Search handles GET /search?q=&limit=&offset=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SearchRequest{
		Query:  query.Get("q"),
		Limit:  utils.ParseInt(query.Get("limit"), utils.DefaultLimit),
		Offset: utils.ParseInt(query.Get("offset"), 0),
	}

	body, err := h.service.Search(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search GIFs")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, body)
}
