package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/service"
	"github.com/vedran77/quill/internal/token"
	"github.com/vedran77/quill/internal/transport/http/middleware"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	for _, p := range r.posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (r *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	if p, ok := r.posts[id]; ok {
		p.Views++
	}
	return nil
}

func (r *fakePostRepo) ListRecentTags(_ context.Context, _ int) ([][]string, error) {
	return nil, nil
}

// testServer wires the handlers the way cmd/server does, over in-memory
// repositories.
type testServer struct {
	mux      *http.ServeMux
	tokens   *token.Service
	users    *fakeUserRepo
	posts    *fakePostRepo
	postSvc  *service.PostService
	authSvc  *service.AuthService
}

func newTestServer() *testServer {
	users := newFakeUserRepo()
	posts := newFakePostRepo()

	tokens := token.NewService("test-secret", time.Hour)
	authSvc := service.NewAuthService(users, tokens)
	postSvc := service.NewPostService(posts, service.NopNotifier{})

	authHandler := NewAuthHandler(authSvc)
	postHandler := NewPostHandler(postSvc)

	auth := middleware.Auth(tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.HandleFunc("GET /posts", postHandler.GetAll)
	mux.HandleFunc("GET /posts/{id}", postHandler.GetOne)
	mux.Handle("POST /posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("PATCH /posts/{id}/edit", auth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))

	return &testServer{
		mux:     mux,
		tokens:  tokens,
		users:   users,
		posts:   posts,
		postSvc: postSvc,
		authSvc: authSvc,
	}
}
