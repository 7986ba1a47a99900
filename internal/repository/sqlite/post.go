package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aidamzz/blogging-app/internal/domain"
)

// postRepo implements domain.PostRepository using SQLite.
type postRepo struct {
	db *sql.DB
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, content, tags, author_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, post.Title, post.Content, post.Tags, post.AuthorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, content, tags, author_id, created_at
		 FROM posts WHERE id = ?`, id,
	).Scan(&post.ID, &post.Title, &post.Content, &post.Tags, &post.AuthorID, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *postRepo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	var conds []string
	var args []any

	if filter.AuthorID != "" {
		conds = append(conds, "author_id = ?")
		args = append(args, filter.AuthorID)
	}
	if filter.Date != nil {
		// Half-open day range keeps the comparison on the stored timestamps
		// instead of relying on SQL date() parsing the driver's time format.
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		conds = append(conds, "created_at >= ? AND created_at < ?")
		args = append(args, day, day.Add(24*time.Hour))
	}
	if filter.Tags != "" {
		conds = append(conds, "tags LIKE '%' || ? || '%'")
		args = append(args, filter.Tags)
	}

	query := `SELECT id, title, content, tags, author_id, created_at FROM posts`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Tags, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, tags = ? WHERE id = ?`,
		post.Title, post.Content, post.Tags, post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
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

func (r *postRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
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
