package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"focusapp/internal/model"
)

func TestLeaderboardService_Top(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("TopByXP", mock.Anything, 10).Return([]model.User{
		{ID: 3, Username: "carol", XP: 90, Level: 2},
		{ID: 1, Username: "alice", XP: 40, Level: 1},
		{ID: 2, Username: "bob", XP: 40, Level: 1},
	}, nil)

	// nil cache degrades to a miss on every call
	service := NewLeaderboardService(mockRepo, nil)
	entries, err := service.Top(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "carol", entries[0].Username)
	assert.Equal(t, 90, entries[0].XP)
	// Equal XP keeps repository order (user id ascending).
	assert.Equal(t, "alice", entries[1].Username)
	assert.Equal(t, "bob", entries[2].Username)
	mockRepo.AssertExpectations(t)
}

// The limit is applied in the repository query; the service always asks for
// exactly ten rows no matter how many users exist.
func TestLeaderboardService_RequestsTenRows(t *testing.T) {
	mockRepo := new(MockUserRepository)
	users := make([]model.User, 10)
	for i := range users {
		users[i] = model.User{ID: uint(i + 1), Username: "u", XP: 100 - i}
	}
	mockRepo.On("TopByXP", mock.Anything, 10).Return(users, nil)

	service := NewLeaderboardService(mockRepo, nil)
	entries, err := service.Top(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 10)
	mockRepo.AssertExpectations(t)
}
