package adaptor

import (
	"net/http"

	"gifboard/internal/dto/request"
	"gifboard/internal/usecase"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, user)
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// Get handles GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// Update handles PUT /users/{id} (protected, self only)
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Update(r.Context(), id, callerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// Delete handles DELETE /users/{id} (protected, self only)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, callerID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseNoContent(w)
}
