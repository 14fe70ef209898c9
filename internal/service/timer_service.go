package service

import (
	"context"
	"fmt"
	"time"

	"focusapp/internal/model"
	"focusapp/internal/repository"
)

// LevelThreshold is the XP a user must reach for the post-session level
// check to grant a level.
const LevelThreshold = 50

// TimerService manages focus timer sessions and the XP they award.
type TimerService interface {
	// Start opens a session and returns its id. When friendID is set a
	// shared timer row is written as well; the id is not checked against
	// the friends list.
	Start(ctx context.Context, userID uint, minutes int, friendID *uint) (uint, error)
	// End closes the session scoped to (sessionID, userID). A focused end
	// credits minutes to the user's XP and then grants at most one level
	// if XP has reached the threshold. The check is one-shot: a single
	// 200-minute session still grants exactly one level.
	End(ctx context.Context, userID, sessionID uint, focused bool, reason string, minutes int) error
}

type timerService struct {
	sessionRepo repository.FocusSessionRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewTimerService builds a TimerService.
func NewTimerService(sessionRepo repository.FocusSessionRepository, userRepo repository.UserRepository) TimerService {
	return &timerService{sessionRepo: sessionRepo, userRepo: userRepo, now: time.Now}
}

func (s *timerService) Start(ctx context.Context, userID uint, minutes int, friendID *uint) (uint, error) {
	session := &model.FocusSession{
		UserID:    userID,
		StartTime: s.now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}

	if friendID != nil {
		timer := &model.SharedTimer{
			UserID:    userID,
			FriendID:  *friendID,
			StartTime: s.now(),
			Minutes:   minutes,
		}
		if err := s.sessionRepo.CreateSharedTimer(ctx, timer); err != nil {
			return 0, fmt.Errorf("create shared timer: %w", err)
		}
	}

	return session.ID, nil
}

func (s *timerService) End(ctx context.Context, userID, sessionID uint, focused bool, reason string, minutes int) error {
	if err := s.sessionRepo.Close(ctx, sessionID, userID, s.now(), focused, reason); err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	if !focused {
		return nil
	}

	if err := s.userRepo.AddXP(ctx, userID, minutes); err != nil {
		return fmt.Errorf("credit xp: %w", err)
	}
	if err := s.userRepo.LevelUpIfEligible(ctx, userID, LevelThreshold); err != nil {
		return fmt.Errorf("level check: %w", err)
	}
	return nil
}
