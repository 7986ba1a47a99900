package domain

import (
	"context"
	"time"
)

// Comment is attached to exactly one post and authored by exactly one user.
type Comment struct {
	ID        string
	Text      string
	PostID    string
	AuthorID  string
	CreatedAt time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	Delete(ctx context.Context, id string) error
}
