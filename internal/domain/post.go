package domain

import (
	"context"
	"time"
)

// Post is a blog entry owned by exactly one user. Tags is a free-text,
// comma-separated string matched by substring, not a normalized set.
type Post struct {
	ID        string
	Title     string
	Content   string
	Tags      string
	AuthorID  string
	CreatedAt time.Time
}

// PostFilter narrows a post listing. Zero values mean "no filter";
// Date matches the UTC calendar day the post was created on.
type PostFilter struct {
	AuthorID string
	Date     *time.Time
	Tags     string
	Skip     int
	Limit    int
}

// PostUpdate carries a partial update. Nil fields are left untouched, and —
// matching the documented falsy-no-op semantics — so are non-nil empty
// strings: a client cannot clear a field to empty through an update.
type PostUpdate struct {
	Title   *string
	Content *string
	Tags    *string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, filter PostFilter) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	// Delete removes the post; its comments are removed by cascade.
	Delete(ctx context.Context, id string) error
}
