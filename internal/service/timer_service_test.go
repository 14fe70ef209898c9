package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"focusapp/internal/model"
)

// fakeUserXPStore implements UserRepository with the same semantics as the
// SQL statements behind AddXP and LevelUpIfEligible, so the level-up rules
// can be exercised across multiple ending calls.
type fakeUserXPStore struct {
	MockUserRepository
	xp    int
	level int
}

func (f *fakeUserXPStore) AddXP(ctx context.Context, userID uint, points int) error {
	f.xp += points
	return nil
}

func (f *fakeUserXPStore) LevelUpIfEligible(ctx context.Context, userID uint, threshold int) error {
	if f.xp >= threshold {
		f.level++
	}
	return nil
}

func newFakeUserXPStore() *fakeUserXPStore {
	return &fakeUserXPStore{xp: 0, level: 1}
}

func anySessionClose(m *MockFocusSessionRepository) {
	m.On("Close", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

func TestTimerService_Start(t *testing.T) {
	t.Run("without friend", func(t *testing.T) {
		sessionRepo := new(MockFocusSessionRepository)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FocusSession")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.FocusSession).ID = 42
		}).Return(nil)

		service := NewTimerService(sessionRepo, newFakeUserXPStore())
		sessionID, err := service.Start(context.Background(), 1, 25, nil)

		assert.NoError(t, err)
		assert.Equal(t, uint(42), sessionID)
		sessionRepo.AssertNotCalled(t, "CreateSharedTimer", mock.Anything, mock.Anything)
	})

	t.Run("with friend creates shared timer", func(t *testing.T) {
		sessionRepo := new(MockFocusSessionRepository)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FocusSession")).Return(nil)
		sessionRepo.On("CreateSharedTimer", mock.Anything, mock.MatchedBy(func(timer *model.SharedTimer) bool {
			return timer.UserID == 1 && timer.FriendID == 9 && timer.Minutes == 25
		})).Return(nil)

		friendID := uint(9)
		service := NewTimerService(sessionRepo, newFakeUserXPStore())
		_, err := service.Start(context.Background(), 1, 25, &friendID)

		assert.NoError(t, err)
		sessionRepo.AssertExpectations(t)
	})
}

func TestTimerService_End_XPAndLevel(t *testing.T) {
	t.Run("focused 50 minutes from zero grants exactly one level", func(t *testing.T) {
		sessionRepo := new(MockFocusSessionRepository)
		anySessionClose(sessionRepo)
		users := newFakeUserXPStore()

		service := NewTimerService(sessionRepo, users)
		err := service.End(context.Background(), 1, 10, true, "", 50)

		assert.NoError(t, err)
		assert.Equal(t, 50, users.xp)
		assert.Equal(t, 2, users.level)
	})

	t.Run("two 30 minute sessions grant one level total", func(t *testing.T) {
		sessionRepo := new(MockFocusSessionRepository)
		anySessionClose(sessionRepo)
		users := newFakeUserXPStore()
		service := NewTimerService(sessionRepo, users)

		assert.NoError(t, service.End(context.Background(), 1, 10, true, "", 30))
		assert.Equal(t, 30, users.xp)
		assert.Equal(t, 1, users.level)

		assert.NoError(t, service.End(context.Background(), 1, 11, true, "", 30))
		assert.Equal(t, 60, users.xp)
		assert.Equal(t, 2, users.level)
	})

	t.Run("single 200 minute session grants only one level", func(t *testing.T) {
		sessionRepo := new(MockFocusSessionRepository)
		anySessionClose(sessionRepo)
		users := newFakeUserXPStore()
		service := NewTimerService(sessionRepo, users)

		assert.NoError(t, service.End(context.Background(), 1, 10, true, "", 200))
		assert.Equal(t, 200, users.xp)
		assert.Equal(t, 2, users.level)
	})

	t.Run("unfocused end credits nothing", func(t *testing.T) {
		sessionRepo := new(MockFocusSessionRepository)
		sessionRepo.On("Close", mock.Anything, uint(10), uint(1), mock.Anything, false, "phone rang").Return(nil)
		users := newFakeUserXPStore()
		service := NewTimerService(sessionRepo, users)

		assert.NoError(t, service.End(context.Background(), 1, 10, false, "phone rang", 30))
		assert.Equal(t, 0, users.xp)
		assert.Equal(t, 1, users.level)
		sessionRepo.AssertExpectations(t)
	})
}

func TestTimerService_End_ClosesScopedToOwner(t *testing.T) {
	sessionRepo := new(MockFocusSessionRepository)
	sessionRepo.On("Close", mock.Anything, uint(10), uint(1), mock.AnythingOfType("time.Time"), true, "").Return(nil)
	users := newFakeUserXPStore()

	service := NewTimerService(sessionRepo, users)
	start := time.Now()
	err := service.End(context.Background(), 1, 10, true, "", 5)

	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)

	closeArgs := sessionRepo.Calls[0].Arguments
	assert.WithinDuration(t, start, closeArgs.Get(3).(time.Time), time.Second)
}
