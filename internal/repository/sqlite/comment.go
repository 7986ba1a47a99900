package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aidamzz/blogging-app/internal/domain"
)

// commentRepo implements domain.CommentRepository using SQLite.
type commentRepo struct {
	db *sql.DB
}

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, text, post_id, author_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, comment.Text, comment.PostID, comment.AuthorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	comment := &domain.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, text, post_id, author_id, created_at
		 FROM comments WHERE id = ?`, id,
	).Scan(&comment.ID, &comment.Text, &comment.PostID, &comment.AuthorID, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query comment by id: %w", err)
	}
	return comment, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, post_id, author_id, created_at
		 FROM comments WHERE post_id = ? ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.PostID, &c.AuthorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
