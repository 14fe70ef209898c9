package service

import (
	"context"

	"focusapp/internal/model"
	"focusapp/internal/repository"
)

// TaskService exposes task list operations. All mutations are scoped to the
// session user; ids that belong to someone else affect nothing and still
// succeed.
type TaskService interface {
	List(ctx context.Context, userID uint) ([]model.Task, error)
	Add(ctx context.Context, userID uint, description string) (*model.Task, error)
	Toggle(ctx context.Context, taskID, userID uint) error
	Delete(ctx context.Context, taskID, userID uint) error
	Clear(ctx context.Context, userID uint) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService builds a TaskService.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) List(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *taskService) Add(ctx context.Context, userID uint, description string) (*model.Task, error) {
	task := &model.Task{
		UserID:      userID,
		Description: description,
		Completed:   false,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Toggle(ctx context.Context, taskID, userID uint) error {
	return s.taskRepo.Toggle(ctx, taskID, userID)
}

func (s *taskService) Delete(ctx context.Context, taskID, userID uint) error {
	return s.taskRepo.Delete(ctx, taskID, userID)
}

func (s *taskService) Clear(ctx context.Context, userID uint) error {
	return s.taskRepo.ClearByUser(ctx, userID)
}
