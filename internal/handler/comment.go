package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aidamzz/blogging-app/internal/domain"
	"github.com/aidamzz/blogging-app/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// HandleCreate attaches a comment to a post.
// POST /posts/{id}/comments
// Request:  {"text":"...","author_id":"..."}
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Text     string `json:"text"`
		AuthorID string `json:"author_id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment := &domain.Comment{
		Text:     req.Text,
		PostID:   r.PathValue("id"),
		AuthorID: req.AuthorID,
	}

	if err := h.comments.Create(r.Context(), caller.ID, comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "author_id must match the authenticated user.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create comment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTO(comment))
}

// HandleList returns all comments on a post.
// GET /posts/{id}/comments
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListForPost(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("list comments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTOs(comments))
}

// HandleDelete removes a comment. The post it was attached to is unaffected.
// DELETE /comments/{id}
// Response: {"message":"Comment successfully deleted"}
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	if err := h.comments.Delete(r.Context(), caller.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comment not found.")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "You may only delete your own comments.")
			return
		}
		slog.Error("delete comment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment successfully deleted"})
}
