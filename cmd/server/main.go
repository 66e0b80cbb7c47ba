package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/vedran77/quill/internal/config"
	"github.com/vedran77/quill/internal/database"
	postgresrepo "github.com/vedran77/quill/internal/repository/postgres"
	"github.com/vedran77/quill/internal/service"
	"github.com/vedran77/quill/internal/token"
	"github.com/vedran77/quill/internal/transport/http/handlers"
	"github.com/vedran77/quill/internal/transport/http/middleware"
	"github.com/vedran77/quill/internal/transport/ws"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	// Database
	if err := database.Migrate(cfg); err != nil {
		log.Fatal(err)
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	commentRepo := postgresrepo.NewCommentRepo(pool)

	// Live event feed
	hub := ws.NewHub()
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Services
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	postService := service.NewPostService(postRepo, notifier)
	commentService := service.NewCommentService(commentRepo, postRepo, notifier)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Auth middleware
	auth := middleware.Auth(tokens)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("GET /posts", postHandler.GetAll)
	mux.HandleFunc("GET /posts/tags", postHandler.Tags)
	mux.HandleFunc("GET /posts/{id}", postHandler.GetOne)
	mux.HandleFunc("GET /tags", postHandler.Tags)
	mux.HandleFunc("GET /comments", commentHandler.Recent)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, tokens))

	// Protected
	mux.Handle("GET /auth/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /posts", auth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("PATCH /posts/{id}/edit", auth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /posts/{id}", auth(http.HandlerFunc(postHandler.Delete)))
	mux.Handle("POST /comments/{id}", auth(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("POST /upload", auth(http.HandlerFunc(uploadHandler.Upload)))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
