package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidamzz/blogging-app/internal/domain"
)

const defaultListLimit = 10

// PostService handles post CRUD, listing filters, and ownership checks.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create creates a post. The declared author must exist and must be the
// authenticated caller.
func (s *PostService) Create(ctx context.Context, callerID string, post *domain.Post) error {
	if post.Title == "" || post.Content == "" {
		return fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}
	if post.AuthorID == "" {
		return fmt.Errorf("%w: author_id is required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByID(ctx, post.AuthorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("author %w", domain.ErrNotFound)
		}
		return fmt.Errorf("check author: %w", err)
	}

	if post.AuthorID != callerID {
		return domain.ErrForbidden
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// GetByID returns a post by ID.
func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns posts matching the filter, applying the default pagination
// window (skip 0, limit 10) where unset.
func (s *PostService) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return s.posts.List(ctx, filter)
}

// Update applies a partial update to a post owned by the caller. Fields that
// are absent or empty in the update are left untouched; an update cannot
// clear a field.
func (s *PostService) Update(ctx context.Context, callerID, id string, upd domain.PostUpdate) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, domain.ErrForbidden
	}

	if upd.Title != nil && *upd.Title != "" {
		post.Title = *upd.Title
	}
	if upd.Content != nil && *upd.Content != "" {
		post.Content = *upd.Content
	}
	if upd.Tags != nil && *upd.Tags != "" {
		post.Tags = *upd.Tags
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete removes a post owned by the caller. Its comments go with it.
func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != callerID {
		return domain.ErrForbidden
	}

	return s.posts.Delete(ctx, id)
}
