package adaptor

import (
	"net/http"
	"strings"

	"gifboard/internal/dto/request"
	"gifboard/internal/usecase"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// Create handles POST /comments (protected)
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, comment)
}

// List handles GET /comments?gifId= and GET /comments?gifIds=a,b
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	req := parseListComments(r)

	// gifIds takes precedence when both are given
	if len(req.GifIDs) > 0 {
		grouped, err := h.service.ListByGifs(r.Context(), req.GifIDs)
		if err != nil {
			handleServiceError(w, h.log, err, "list comments")
			return
		}
		utils.ResponseSuccess(w, grouped)
		return
	}

	comments, err := h.service.ListByGif(r.Context(), req.GifID)
	if err != nil {
		handleServiceError(w, h.log, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, comments)
}

// Update handles PUT /comments/{id} (protected, owner only)
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "comment")
	if !ok {
		return
	}

	var req request.UpdateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, comment)
}

// Delete handles DELETE /comments/{id} (protected, owner only)
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "comment")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		handleServiceError(w, h.log, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}

func parseListComments(r *http.Request) request.ListCommentsRequest {
	query := r.URL.Query()

	return request.ListCommentsRequest{
		GifID:  strings.TrimSpace(query.Get("gifId")),
		GifIDs: utils.SplitCSV(query.Get("gifIds")),
	}
}
