package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"focusapp/internal/model"
)

func TestUserService_Home(t *testing.T) {
	// Fixed clock: 2026-03-14 10:30 local time.
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)
	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

	mockUsers := new(MockUserRepository)
	mockTasks := new(MockTaskRepository)

	// The lazy reset must run before the profile is read, scoped to the
	// requesting user and conditioned on today's date.
	mockUsers.On("ResetDailyXPIfStale", mock.Anything, uint(1), midnight).Return(nil)
	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:       1,
		Username: "alice",
		XP:       0,
		Level:    3,
	}, nil)
	mockTasks.On("ListByUser", mock.Anything, uint(1)).Return([]model.Task{
		{ID: 1, UserID: 1, Description: "review notes"},
	}, nil)

	service := &userService{
		userRepo: mockUsers,
		taskRepo: mockTasks,
		now:      func() time.Time { return now },
	}

	user, tasks, err := service.Home(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 0, user.XP)
	assert.Len(t, tasks, 1)
	mockUsers.AssertExpectations(t)
	mockTasks.AssertExpectations(t)
}
