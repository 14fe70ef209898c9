package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"focusapp/internal/auth"
	"focusapp/internal/cache"
	"focusapp/internal/config"
	"focusapp/internal/db"
	"focusapp/internal/handler"
	"focusapp/internal/model"
	"focusapp/internal/repository"
	"focusapp/internal/router"
	"focusapp/internal/scheduler"
	"focusapp/internal/service"
)

// @title Focus App API
// @version 1.0
// @description Task list, focus timer, XP and friends API with cookie sessions.
// @host localhost:8080
// @schemes http
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SharedTimer{},
			&model.FocusSession{},
			&model.Friendship{},
			&model.Task{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.FocusSession{},
		&model.SharedTimer{},
		&model.Friendship{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	sessionRepo := repository.NewFocusSessionRepository(gormDB)
	friendshipRepo := repository.NewFriendshipRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, sessionStore)
	userService := service.NewUserService(userRepo, taskRepo)
	taskService := service.NewTaskService(taskRepo)
	timerService := service.NewTimerService(sessionRepo, userRepo)
	friendService := service.NewFriendService(friendshipRepo, userRepo, taskRepo)
	leaderboardService := service.NewLeaderboardService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(userService, taskService)
	timerHandler := handler.NewTimerHandler(timerService)
	friendHandler := handler.NewFriendHandler(friendService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)

	// Register routes
	router.Register(
		e,
		jwtService,
		sessionStore,
		authHandler,
		taskHandler,
		timerHandler,
		friendHandler,
		leaderboardHandler,
	)

	// Start the midnight XP reset job
	resetJob, err := scheduler.NewDailyXPReset(userRepo)
	if err != nil {
		log.Fatalf("scheduler init: %v", err)
	}
	resetJob.Start()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	// Wait for shutdown signal, then stop the server and the scheduler.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := resetJob.Shutdown(); err != nil {
		log.Printf("scheduler shutdown: %v", err)
	}
}
