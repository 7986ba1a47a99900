package handler

import (
	"net/http"

	"github.com/aidamzz/blogging-app/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	users *service.UserService,
	posts *service.PostService,
	comments *service.CommentService,
) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(users)
	postHandler := NewPostHandler(posts)
	commentHandler := NewCommentHandler(comments)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /users", userHandler.HandleRegister)
	mux.HandleFunc("POST /token", authHandler.HandleToken)
	mux.Handle("DELETE /users/{id}", RequireAuth(auth, http.HandlerFunc(userHandler.HandleDelete)))

	mux.Handle("POST /posts", RequireAuth(auth, http.HandlerFunc(postHandler.HandleCreate)))
	mux.Handle("GET /posts", OptionalAuth(auth, http.HandlerFunc(postHandler.HandleList)))
	mux.HandleFunc("GET /posts/{id}", postHandler.HandleGet)
	mux.Handle("PUT /posts/{id}", RequireAuth(auth, http.HandlerFunc(postHandler.HandleUpdate)))
	mux.Handle("DELETE /posts/{id}", RequireAuth(auth, http.HandlerFunc(postHandler.HandleDelete)))

	mux.Handle("POST /posts/{id}/comments", RequireAuth(auth, http.HandlerFunc(commentHandler.HandleCreate)))
	mux.HandleFunc("GET /posts/{id}/comments", commentHandler.HandleList)
	mux.Handle("DELETE /comments/{id}", RequireAuth(auth, http.HandlerFunc(commentHandler.HandleDelete)))
}
