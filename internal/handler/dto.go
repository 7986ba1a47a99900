package handler

import (
	"time"

	"github.com/aidamzz/blogging-app/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is
// deliberately absent.
type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// PostDTO is the JSON representation of a post.
type PostDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      p.Tags,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// CommentDTO is the JSON representation of a comment.
type CommentDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	PostID    string `json:"post_id"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

func toCommentDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Text:      c.Text,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i := range comments {
		dtos[i] = toCommentDTO(&comments[i])
	}
	return dtos
}
