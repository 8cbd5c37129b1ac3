package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"gifboard/internal/usecase"
	"gifboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Comment *CommentHandler
	Rating  *RatingHandler
	Search  *SearchHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Comment: NewCommentHandler(service.Comment, log),
		Rating:  NewRatingHandler(service.Rating, log),
		Search:  NewSearchHandler(service.Search, log),
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, answering 400 when it is not a
// positive integer.
func pathID(w http.ResponseWriter, r *http.Request, resource string) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid "+resource+" ID", nil)
		return 0, false
	}
	return id, true
}

// currentUser returns the id placed in the context by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return 0, false
	}
	return userID, true
}

// handleServiceError maps use case errors to HTTP responses. Anything that is
// not a *usecase.Error is logged and hidden behind a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var svcErr *usecase.Error
	if !errors.As(err, &svcErr) {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		var details any
		if len(svcErr.Fields) > 0 {
			details = svcErr.Fields
		}
		utils.ResponseBadRequest(w, svcErr.Message, details)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, svcErr.Message)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, svcErr.Message)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, svcErr.Message)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, svcErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, svcErr.Message)
	}
}
