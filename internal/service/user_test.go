package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aidamzz/blogging-app/internal/domain"
)

func TestUserService_Register_Success(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Register(context.Background(), "alice", "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Username != "alice" {
		t.Fatalf("expected username alice, got %s", user.Username)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected email a@x.com, got %s", user.Email)
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.users.Register(ctx, "alice", "a@x.com", "pw123"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := env.users.Register(ctx, "alice", "other@x.com", "pw456")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.users.Register(ctx, "alice", "a@x.com", "pw123"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := env.users.Register(ctx, "bob", "a@x.com", "pw456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@x.com", "pw123"},
		{"empty email", "alice", "", "pw123"},
		{"empty password", "alice", "a@x.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.users.Register(ctx, tc.username, tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUserService_Delete_OtherAccountForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")

	err := env.users.Delete(ctx, alice.ID, bob.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := env.users.GetByID(ctx, bob.ID); err != nil {
		t.Fatalf("bob should still exist: %v", err)
	}
}

func TestUserService_Delete_CascadesPostsAndComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")

	post := &domain.Post{Title: "Alice's post", Content: "body", AuthorID: alice.ID}
	if err := env.posts.Create(ctx, alice.ID, post); err != nil {
		t.Fatalf("Create post: %v", err)
	}

	// Bob comments on Alice's post; the comment rides on the post's cascade.
	comment := &domain.Comment{Text: "nice post", PostID: post.ID, AuthorID: bob.ID}
	if err := env.comments.Create(ctx, bob.ID, comment); err != nil {
		t.Fatalf("Create comment: %v", err)
	}

	if err := env.users.Delete(ctx, alice.ID, alice.ID); err != nil {
		t.Fatalf("Delete user: %v", err)
	}

	if _, err := env.posts.GetByID(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected post to be cascade-deleted, got %v", err)
	}
	if _, err := env.db.Comments().GetByID(ctx, comment.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected comment on deleted post to be cascade-deleted, got %v", err)
	}
}
