package adaptor

import (
	"net/http"
	"strings"

	"gifboard/internal/dto/request"
	"gifboard/internal/usecase"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// Upsert handles POST /ratings (protected). 201 when a rating was created,
// 200 when the caller's existing rating was overwritten.
func (h *RatingHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpsertRatingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rating, created, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert rating")
		return
	}

	if created {
		utils.ResponseCreated(w, rating)
		return
	}
	utils.ResponseSuccess(w, rating)
}

// List handles GET /ratings?gifId=&userId= and GET /ratings?gifIds=a,b&userId=
func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListRatings(w, r)
	if !ok {
		return
	}

	if len(req.GifIDs) > 0 {
		grouped, err := h.service.ListByGifs(r.Context(), req.GifIDs, req.UserID)
		if err != nil {
			handleServiceError(w, h.log, err, "list ratings")
			return
		}
		utils.ResponseSuccess(w, grouped)
		return
	}

	ratings, err := h.service.ListByGif(r.Context(), req.GifID, req.UserID)
	if err != nil {
		handleServiceError(w, h.log, err, "list ratings")
		return
	}

	utils.ResponseSuccess(w, ratings)
}

// Stats handles GET /ratings/stats?gifId=
func (h *RatingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context(), strings.TrimSpace(r.URL.Query().Get("gifId")))
	if err != nil {
		handleServiceError(w, h.log, err, "get rating stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// Update handles PUT /ratings/{id} (protected, owner only)
func (h *RatingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "rating")
	if !ok {
		return
	}

	var req request.UpdateRatingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rating, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, rating)
}

// Delete handles DELETE /ratings/{id} (protected, owner only)
func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "rating")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		handleServiceError(w, h.log, err, "delete rating")
		return
	}

	utils.ResponseNoContent(w)
}

func parseListRatings(w http.ResponseWriter, r *http.Request) (request.ListRatingsRequest, bool) {
	query := r.URL.Query()

	req := request.ListRatingsRequest{
		GifID:  strings.TrimSpace(query.Get("gifId")),
		GifIDs: utils.SplitCSV(query.Get("gifIds")),
	}

	if raw := query.Get("userId"); raw != "" {
		userID, ok := utils.ParseID(raw)
		if !ok {
			utils.ResponseBadRequest(w, "userId must be a positive integer", nil)
			return req, false
		}
		req.UserID = &userID
	}

	return req, true
}
