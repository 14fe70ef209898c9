package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"focusapp/internal/config"
	"focusapp/internal/db"
	"focusapp/internal/model"
	"focusapp/internal/repository"
)

// seedUser describes one demo user and their starting tasks.
type seedUser struct {
	Username string
	Password string
	Tasks    []string
}

var seedUsers = []seedUser{
	{
		Username: "alice",
		Password: "alice123",
		Tasks:    []string{"Finish algebra homework", "Review flashcards"},
	},
	{
		Username: "bob",
		Password: "bob123",
		Tasks:    []string{"Write lab report"},
	},
	{
		Username: "carol",
		Password: "carol123",
		Tasks:    []string{},
	},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.FocusSession{},
		&model.SharedTimer{},
		&model.Friendship{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	friendshipRepo := repository.NewFriendshipRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	ids := make(map[string]uint, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := userRepo.FindByUsername(ctx, su.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Error checking user %s: %v", su.Username, err)
		}
		if existing != nil {
			ids[su.Username] = existing.ID
			skipped++
			continue
		}

		user, err := createUser(ctx, userRepo, taskRepo, su)
		if err != nil {
			log.Fatalf("Error creating user %s: %v", su.Username, err)
		}
		ids[su.Username] = user.ID
		created++
	}

	// alice and bob start out as friends so the friends page has content
	related, err := friendshipRepo.ExistsBetween(ctx, ids["alice"], ids["bob"])
	if err != nil {
		log.Fatalf("Error checking friendship: %v", err)
	}
	if !related {
		friendship := &model.Friendship{
			UserID:   ids["alice"],
			FriendID: ids["bob"],
			Status:   model.FriendshipAccepted,
		}
		if err := friendshipRepo.Create(ctx, friendship); err != nil {
			log.Fatalf("Error creating friendship: %v", err)
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}

func createUser(ctx context.Context, userRepo repository.UserRepository, taskRepo repository.TaskRepository, su seedUser) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     su.Username,
		PasswordHash: string(hashed),
		XP:           0,
		Level:        1,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	for _, description := range su.Tasks {
		task := &model.Task{UserID: user.ID, Description: description}
		if err := taskRepo.Create(ctx, task); err != nil {
			return nil, fmt.Errorf("create task: %w", err)
		}
	}

	return user, nil
}
