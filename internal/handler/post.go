package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aidamzz/blogging-app/internal/domain"
	"github.com/aidamzz/blogging-app/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleCreate processes post creation.
// POST /posts
// Request:  {"title":"...","content":"...","author_id":"...","tags":"..."}
// Response: the created post with its generated id and timestamp.
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		AuthorID string `json:"author_id"`
		Tags     string `json:"tags"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post := &domain.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
		Tags:     req.Tags,
	}

	if err := h.posts.Create(r.Context(), caller.ID, post); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Author not found.")
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
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleList returns posts filtered by author, creation date, and tag
// substring, paginated by skip/limit.
// GET /posts?skip=0&limit=10&author_id=...&date=2006-01-02&tags=...
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.PostFilter{
		AuthorID: q.Get("author_id"),
		Tags:     q.Get("tags"),
	}

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "skip must be an integer.")
			return
		}
		filter.Skip = skip
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "limit must be an integer.")
			return
		}
		filter.Limit = limit
	}
	if v := q.Get("date"); v != "" {
		date, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "date must be formatted as YYYY-MM-DD.")
			return
		}
		filter.Date = &date
	}

	posts, err := h.posts.List(r.Context(), filter)
	if err != nil {
		slog.Error("list posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTOs(posts))
}

// HandleGet returns a single post.
// GET /posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("get post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleUpdate applies a partial update to a post. Absent or empty fields
// are left untouched.
// PUT /posts/{id}
// Request:  {"title":"...","content":"...","tags":"..."} (all optional)
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Tags    *string `json:"tags"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	upd := domain.PostUpdate{Title: req.Title, Content: req.Content, Tags: req.Tags}
	post, err := h.posts.Update(r.Context(), caller.ID, r.PathValue("id"), upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "You may only update your own posts.")
			return
		}
		slog.Error("update post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleDelete removes a post and, by cascade, its comments.
// DELETE /posts/{id}
// Response: {"message":"Post successfully deleted"}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	if err := h.posts.Delete(r.Context(), caller.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusForbidden, "You may only delete your own posts.")
			return
		}
		slog.Error("delete post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post successfully deleted"})
}
