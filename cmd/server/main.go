package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DarkTheory001/DevNest/internal/config"
	"github.com/DarkTheory001/DevNest/internal/database"
	"github.com/DarkTheory001/DevNest/internal/handler"
	"github.com/DarkTheory001/DevNest/internal/middleware"
	"github.com/DarkTheory001/DevNest/internal/repository"
	"github.com/DarkTheory001/DevNest/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	// Database
	db, err := database.NewPool(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	chatRepo := repository.NewChatRepository(db)
	botRepo := repository.NewWhatsappBotRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret)
	coinSvc := service.NewCoinService(txRepo, userRepo)
	githubSvc := service.NewGitHubService(cfg.GitHubBaseURL, cfg.GitHubToken)
	wsHub := service.NewWSHub()
	chatSvc := service.NewChatService(chatRepo, userRepo, wsHub)

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Health
	healthH := handler.NewHealthHandler(db)
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API v1
	v1 := app.Group("/api/v1")

	// Auth (public)
	authH := handler.NewAuthHandler(authSvc, userRepo)
	auth := v1.Group("/auth")
	auth.Post("/register", middleware.RateLimit(5, time.Minute), authH.Register)
	auth.Post("/login", middleware.RateLimit(10, time.Minute), authH.Login)
	auth.Post("/refresh", middleware.RateLimit(20, time.Minute), authH.Refresh)
	auth.Post("/logout", authH.Logout)

	// JWT-protected routes
	protected := v1.Group("", middleware.Auth(cfg.JWTSecret))
	protected.Get("/auth/user", authH.Me)

	// Projects
	projectH := handler.NewProjectHandler(projectRepo)
	projects := protected.Group("/projects")
	projects.Get("/", projectH.List)
	projects.Post("/", projectH.Create)
	projects.Get("/:id", projectH.Get)
	projects.Patch("/:id", projectH.Update)
	projects.Delete("/:id", projectH.Delete)

	// Coin transactions
	txH := handler.NewTransactionHandler(coinSvc)
	protected.Get("/transactions", txH.List)
	protected.Post("/transactions", middleware.RequireAdmin(userRepo), txH.Create)

	// Chat history
	chatH := handler.NewChatHandler(chatSvc, cfg.ChatHistory)
	protected.Get("/chat/messages", chatH.GetMessages)

	// WhatsApp bots
	botH := handler.NewWhatsappBotHandler(botRepo, projectRepo)
	bots := protected.Group("/whatsapp-bots")
	bots.Post("/", botH.Create)
	bots.Get("/project/:projectId", botH.GetByProject)
	bots.Patch("/:id", botH.Update)

	// GitHub integration
	githubH := handler.NewGitHubHandler(githubSvc)
	github := protected.Group("/github")
	github.Get("/repos", githubH.ListRepos)
	github.Get("/repos/:owner/:repo/contents", githubH.GetContents)
	github.Post("/repos", githubH.CreateRepo)

	// Admin
	adminH := handler.NewAdminHandler(userRepo, wsHub)
	admin := protected.Group("/admin", middleware.RequireAdmin(userRepo))
	admin.Get("/users", adminH.ListUsers)
	admin.Get("/stats", adminH.Stats)

	// WebSocket
	wsH := handler.NewWSHandler(wsHub, chatSvc, authSvc)
	app.Get("/ws", wsH.Upgrade)

	// Start hub
	go wsHub.Run()

	// Background maintenance: expired sessions and old chat messages.
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := sessionRepo.CleanupExpired(ctx); err != nil {
				log.Printf("Session cleanup failed: %v", err)
			}
			if n, err := chatRepo.DeleteOlderThan(ctx, 30); err != nil {
				log.Printf("Chat retention failed: %v", err)
			} else if n > 0 {
				log.Printf("Chat retention: removed %d old messages", n)
			}
			cancel()
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("DevNest backend running on :%s (%s)", cfg.Port, cfg.Env)

	<-quit
	log.Println("Shutting down...")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	wsHub.Shutdown()
	log.Println("Server stopped")
}
