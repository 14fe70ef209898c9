package service

import (
	"context"
	"fmt"
	"time"

	"focusapp/internal/model"
	"focusapp/internal/repository"
)

// UserService exposes the home view: the user's profile and task list,
// with the lazy daily XP reset applied first.
type UserService interface {
	Home(ctx context.Context, userID uint) (*model.User, []model.Task, error)
}

type userService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) UserService {
	return &userService{userRepo: userRepo, taskRepo: taskRepo, now: time.Now}
}

// Home resets the user's XP if their last reset date is before today, then
// returns the fresh profile and task list. The reset touches only the
// requesting user; the scheduler covers everyone at midnight.
func (s *userService) Home(ctx context.Context, userID uint) (*model.User, []model.Task, error) {
	if err := s.userRepo.ResetDailyXPIfStale(ctx, userID, startOfDay(s.now())); err != nil {
		return nil, nil, fmt.Errorf("daily xp reset: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list tasks: %w", err)
	}

	return user, tasks, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
