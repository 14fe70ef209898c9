package repository

import (
	"context"

	"gorm.io/gorm"

	"focusapp/internal/model"
)

// TaskRepository defines task persistence operations. Every mutation is
// scoped to the owning user; mismatched ids affect zero rows and return nil.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID uint) ([]model.Task, error)
	Toggle(ctx context.Context, taskID, userID uint) error
	Delete(ctx context.Context, taskID, userID uint) error
	ClearByUser(ctx context.Context, userID uint) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Toggle(ctx context.Context, taskID, userID uint) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Update("completed", gorm.Expr("NOT completed")).Error
}

func (r *taskRepository) Delete(ctx context.Context, taskID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&model.Task{}).Error
}

func (r *taskRepository) ClearByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Task{}).Error
}
