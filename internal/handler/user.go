package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidamzz/blogging-app/internal/domain"
	"github.com/aidamzz/blogging-app/internal/service"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleRegister processes a JSON registration request.
// POST /users
// Request:  {"username":"...","email":"...","password":"..."}
// Response: the created user, without the password.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "Username already registered.")
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email already registered.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleDelete removes a user account. Only the account owner may delete it;
// the user's posts and comments are removed by cascade.
// DELETE /users/{id}
// Response: {"message":"User successfully deleted"}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	id := r.PathValue("id")
	if err := h.users.Delete(r.Context(), caller.ID, id); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "You may only delete your own account.")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("delete user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User successfully deleted"})
}
