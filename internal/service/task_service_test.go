package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"focusapp/internal/model"
)

func TestTaskService_Add(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.UserID == 1 && task.Description == "write report" && !task.Completed
	})).Return(nil)

	service := NewTaskService(mockRepo)
	task, err := service.Add(context.Background(), 1, "write report")

	assert.NoError(t, err)
	assert.NotNil(t, task)
	assert.False(t, task.Completed)
	mockRepo.AssertExpectations(t)
}

// Mutating a task that exists but belongs to someone else matches zero rows
// in the repository and must surface as success, not as an error.
func TestTaskService_ForeignTaskIsSilentNoOp(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Toggle", mock.Anything, uint(99), uint(1)).Return(nil)
	mockRepo.On("Delete", mock.Anything, uint(99), uint(1)).Return(nil)

	service := NewTaskService(mockRepo)

	assert.NoError(t, service.Toggle(context.Background(), 99, 1))
	assert.NoError(t, service.Delete(context.Background(), 99, 1))
	mockRepo.AssertExpectations(t)
}

func TestTaskService_ListAndClear(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(1)).Return([]model.Task{
		{ID: 1, UserID: 1, Description: "a"},
		{ID: 2, UserID: 1, Description: "b", Completed: true},
	}, nil)
	mockRepo.On("ClearByUser", mock.Anything, uint(1)).Return(nil)

	service := NewTaskService(mockRepo)

	tasks, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)

	assert.NoError(t, service.Clear(context.Background(), 1))
	mockRepo.AssertExpectations(t)
}
