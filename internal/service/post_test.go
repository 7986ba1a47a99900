package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aidamzz/blogging-app/internal/domain"
)

func createTestPost(t *testing.T, env *testEnv, author *domain.User, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{Title: title, Content: "content of " + title, AuthorID: author.ID}
	if err := env.posts.Create(context.Background(), author.ID, post); err != nil {
		t.Fatalf("Create post %s: %v", title, err)
	}
	return post
}

func TestPostService_Create_Success(t *testing.T) {
	env := newTestEnv(t)
	alice := registerTestUser(t, env, "alice")

	post := &domain.Post{Title: "hello", Content: "world", Tags: "go,blog", AuthorID: alice.ID}
	if err := env.posts.Create(context.Background(), alice.ID, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if post.ID == "" {
		t.Fatal("expected post ID to be set")
	}
	if post.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp to be set")
	}
}

func TestPostService_Create_UnknownAuthor(t *testing.T) {
	env := newTestEnv(t)
	alice := registerTestUser(t, env, "alice")

	post := &domain.Post{Title: "t", Content: "c", AuthorID: "no-such-user"}
	err := env.posts.Create(context.Background(), alice.ID, post)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown author, got %v", err)
	}
}

func TestPostService_Create_AuthorMismatch(t *testing.T) {
	env := newTestEnv(t)
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")

	// Alice declares Bob as the author.
	post := &domain.Post{Title: "t", Content: "c", AuthorID: bob.ID}
	err := env.posts.Create(context.Background(), alice.ID, post)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for author mismatch, got %v", err)
	}
}

func TestPostService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.posts.GetByID(context.Background(), "bogus-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_List_DefaultPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")

	for i := 0; i < 12; i++ {
		createTestPost(t, env, alice, fmt.Sprintf("post %02d", i))
	}

	posts, err := env.posts.List(ctx, domain.PostFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 10 {
		t.Fatalf("expected default limit of 10 posts, got %d", len(posts))
	}

	rest, err := env.posts.List(ctx, domain.PostFilter{Skip: 10})
	if err != nil {
		t.Fatalf("List skip=10: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 remaining posts, got %d", len(rest))
	}
}

func TestPostService_List_FilterByAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")

	createTestPost(t, env, alice, "alice one")
	createTestPost(t, env, alice, "alice two")
	createTestPost(t, env, bob, "bob one")

	posts, err := env.posts.List(ctx, domain.PostFilter{AuthorID: alice.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts by alice, got %d", len(posts))
	}
	for _, p := range posts {
		if p.AuthorID != alice.ID {
			t.Fatalf("expected author %s, got %s", alice.ID, p.AuthorID)
		}
	}
}

func TestPostService_List_FilterByTagSubstring(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")

	tagged := &domain.Post{Title: "tagged", Content: "c", Tags: "golang,databases", AuthorID: alice.ID}
	if err := env.posts.Create(ctx, alice.ID, tagged); err != nil {
		t.Fatalf("Create: %v", err)
	}
	plain := &domain.Post{Title: "plain", Content: "c", Tags: "cooking", AuthorID: alice.ID}
	if err := env.posts.Create(ctx, alice.ID, plain); err != nil {
		t.Fatalf("Create: %v", err)
	}

	posts, err := env.posts.List(ctx, domain.PostFilter{Tags: "data"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != tagged.ID {
		t.Fatalf("expected only the tagged post, got %d posts", len(posts))
	}
}

func TestPostService_List_FilterByDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	post := createTestPost(t, env, alice, "today")

	sameDay := post.CreatedAt
	posts, err := env.posts.List(ctx, domain.PostFilter{Date: &sameDay})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post on creation day, got %d", len(posts))
	}

	dayBefore := post.CreatedAt.AddDate(0, 0, -1)
	posts, err = env.posts.List(ctx, domain.PostFilter{Date: &dayBefore})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts the day before, got %d", len(posts))
	}
}

func TestPostService_Update_OverwritesNonEmptyFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	post := createTestPost(t, env, alice, "original")

	newTitle := "updated"
	updated, err := env.posts.Update(ctx, alice.ID, post.ID, domain.PostUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "updated" {
		t.Fatalf("expected title updated, got %q", updated.Title)
	}
	if updated.Content != post.Content {
		t.Fatalf("content should be untouched, got %q", updated.Content)
	}
}

func TestPostService_Update_EmptyFieldIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	post := createTestPost(t, env, alice, "original")

	// An empty string does not clear the field; absent fields are untouched.
	empty := ""
	updated, err := env.posts.Update(ctx, alice.ID, post.ID, domain.PostUpdate{Title: &empty})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "original" {
		t.Fatalf("empty-string update should be a no-op, got title %q", updated.Title)
	}

	stored, err := env.posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Title != "original" {
		t.Fatalf("stored title changed by empty-string update: %q", stored.Title)
	}
}

func TestPostService_Update_NotOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")
	post := createTestPost(t, env, alice, "alice's")

	title := "hijacked"
	_, err := env.posts.Update(ctx, bob.ID, post.ID, domain.PostUpdate{Title: &title})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPostService_Delete_CascadesComments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")
	post := createTestPost(t, env, alice, "with comments")

	var commentIDs []string
	for i := 0; i < 3; i++ {
		c := &domain.Comment{Text: fmt.Sprintf("comment %d", i), PostID: post.ID, AuthorID: bob.ID}
		if err := env.comments.Create(ctx, bob.ID, c); err != nil {
			t.Fatalf("Create comment: %v", err)
		}
		commentIDs = append(commentIDs, c.ID)
	}

	if err := env.posts.Delete(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := env.posts.GetByID(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}
	// Every comment goes with the post, regardless of comment author.
	for _, id := range commentIDs {
		if _, err := env.db.Comments().GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected comment %s cascade-deleted, got %v", id, err)
		}
	}
}

func TestPostService_Delete_NotOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerTestUser(t, env, "alice")
	bob := registerTestUser(t, env, "bob")
	post := createTestPost(t, env, alice, "alice's")

	if err := env.posts.Delete(ctx, bob.ID, post.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
