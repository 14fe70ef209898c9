package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "focusapp/internal/errors"
	"focusapp/internal/model"
	"focusapp/internal/repository"
)

// FriendOverview is the /friends page payload: requests waiting on the user
// plus the accepted friends set.
type FriendOverview struct {
	IncomingRequests []repository.PendingRequest `json:"incoming_requests"`
	Friends          []repository.FriendEntry    `json:"friends"`
}

// FriendService manages friend requests and friend visibility.
type FriendService interface {
	Overview(ctx context.Context, userID uint) (*FriendOverview, error)
	SendRequest(ctx context.Context, userID, targetID uint) error
	// Respond accepts or rejects a pending request. Only the recipient of
	// the request may respond; anyone else is a silent no-op.
	Respond(ctx context.Context, userID, requestID uint, accept bool) error
	// FriendTasks returns the other user's task list when any friendship
	// row links the pair, pending included.
	FriendTasks(ctx context.Context, userID, friendID uint) ([]model.Task, error)
}

type friendService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	taskRepo       repository.TaskRepository
}

// NewFriendService builds a FriendService.
func NewFriendService(friendshipRepo repository.FriendshipRepository, userRepo repository.UserRepository, taskRepo repository.TaskRepository) FriendService {
	return &friendService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		taskRepo:       taskRepo,
	}
}

func (s *friendService) Overview(ctx context.Context, userID uint) (*FriendOverview, error) {
	incoming, err := s.friendshipRepo.ListIncomingPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list incoming requests: %w", err)
	}

	friends, err := s.friendshipRepo.ListAcceptedFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	return &FriendOverview{IncomingRequests: incoming, Friends: friends}, nil
}

func (s *friendService) SendRequest(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return apperrors.ErrSelfFriendRequest
	}

	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("look up user: %w", err)
	}

	exists, err := s.friendshipRepo.ExistsBetween(ctx, userID, targetID)
	if err != nil {
		return fmt.Errorf("check existing relationship: %w", err)
	}
	if exists {
		return apperrors.ErrAlreadyRelated
	}

	friendship := &model.Friendship{
		UserID:   userID,
		FriendID: targetID,
		Status:   model.FriendshipPending,
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return fmt.Errorf("create friend request: %w", err)
	}
	return nil
}

func (s *friendService) Respond(ctx context.Context, userID, requestID uint, accept bool) error {
	friendship, err := s.friendshipRepo.FindByID(ctx, requestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("load friend request: %w", err)
	}

	// Only the recipient may respond; everyone else is ignored.
	if friendship.FriendID != userID {
		return nil
	}

	if accept {
		return s.friendshipRepo.UpdateStatus(ctx, requestID, model.FriendshipAccepted)
	}
	return s.friendshipRepo.Delete(ctx, requestID)
}

func (s *friendService) FriendTasks(ctx context.Context, userID, friendID uint) ([]model.Task, error) {
	related, err := s.friendshipRepo.ExistsBetween(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("check relationship: %w", err)
	}
	if !related {
		return nil, apperrors.ErrNotFriends
	}

	return s.taskRepo.ListByUser(ctx, friendID)
}
