package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"focusapp/internal/model"
	"focusapp/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ResetDailyXPIfStale(ctx context.Context, userID uint, today time.Time) error {
	args := m.Called(ctx, userID, today)
	return args.Error(0)
}

func (m *MockUserRepository) ResetAllXP(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) AddXP(ctx context.Context, userID uint, points int) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *MockUserRepository) LevelUpIfEligible(ctx context.Context, userID uint, threshold int) error {
	args := m.Called(ctx, userID, threshold)
	return args.Error(0)
}

func (m *MockUserRepository) TopByXP(ctx context.Context, limit int) ([]model.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Toggle(ctx context.Context, taskID, userID uint) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, taskID, userID uint) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}

func (m *MockTaskRepository) ClearByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockFocusSessionRepository is a mock implementation of FocusSessionRepository.
type MockFocusSessionRepository struct {
	mock.Mock
}

func (m *MockFocusSessionRepository) Create(ctx context.Context, session *model.FocusSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockFocusSessionRepository) Close(ctx context.Context, sessionID, userID uint, end time.Time, focused bool, reason string) error {
	args := m.Called(ctx, sessionID, userID, end, focused, reason)
	return args.Error(0)
}

func (m *MockFocusSessionRepository) CreateSharedTimer(ctx context.Context, timer *model.SharedTimer) error {
	args := m.Called(ctx, timer)
	return args.Error(0)
}

// MockFriendshipRepository is a mock implementation of FriendshipRepository.
type MockFriendshipRepository struct {
	mock.Mock
}

func (m *MockFriendshipRepository) Create(ctx context.Context, friendship *model.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}

func (m *MockFriendshipRepository) FindByID(ctx context.Context, id uint) (*model.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) ExistsBetween(ctx context.Context, userID, otherID uint) (bool, error) {
	args := m.Called(ctx, userID, otherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipRepository) ListIncomingPending(ctx context.Context, userID uint) ([]repository.PendingRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PendingRequest), args.Error(1)
}

func (m *MockFriendshipRepository) ListAcceptedFriends(ctx context.Context, userID uint) ([]repository.FriendEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FriendEntry), args.Error(1)
}

func (m *MockFriendshipRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFriendshipRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
