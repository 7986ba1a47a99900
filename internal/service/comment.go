package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidamzz/blogging-app/internal/domain"
)

// CommentService handles comment creation, listing, and deletion.
type CommentService struct {
	comments domain.CommentRepository
	posts    domain.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, posts domain.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create attaches a comment to an existing post. The declared author must be
// the authenticated caller.
func (s *CommentService) Create(ctx context.Context, callerID string, comment *domain.Comment) error {
	if comment.Text == "" {
		return fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	if comment.AuthorID == "" {
		return fmt.Errorf("%w: author_id is required", domain.ErrInvalidInput)
	}

	if _, err := s.posts.GetByID(ctx, comment.PostID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("post %w", domain.ErrNotFound)
		}
		return fmt.Errorf("check post: %w", err)
	}

	if comment.AuthorID != callerID {
		return domain.ErrForbidden
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListForPost returns all comments on an existing post.
func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("post %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("check post: %w", err)
	}

	return s.comments.ListByPost(ctx, postID)
}

// Delete removes a comment authored by the caller. The post is unaffected.
func (s *CommentService) Delete(ctx context.Context, callerID, id string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != callerID {
		return domain.ErrForbidden
	}

	return s.comments.Delete(ctx, id)
}
