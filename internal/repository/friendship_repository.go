package repository

import (
	"context"

	"gorm.io/gorm"

	"focusapp/internal/model"
)

// PendingRequest is an incoming friend request joined with the requester's
// username.
type PendingRequest struct {
	RequestID uint   `json:"request_id" gorm:"column:id"`
	Username  string `json:"username"`
}

// FriendEntry is a user visible in someone's accepted friends list.
type FriendEntry struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// FriendshipRepository defines friendship persistence operations. A
// relationship is stored as one directed row; readers that need the
// symmetric view query both directions.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *model.Friendship) error
	FindByID(ctx context.Context, id uint) (*model.Friendship, error)
	// ExistsBetween reports whether any row connects the two users in either
	// direction, pending or accepted.
	ExistsBetween(ctx context.Context, userID, otherID uint) (bool, error)
	ListIncomingPending(ctx context.Context, userID uint) ([]PendingRequest, error)
	ListAcceptedFriends(ctx context.Context, userID uint) ([]FriendEntry, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository builds a GORM-backed repository.
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *model.Friendship) error {
	return r.db.WithContext(ctx).Create(friendship).Error
}

func (r *friendshipRepository) FindByID(ctx context.Context, id uint) (*model.Friendship, error) {
	var friendship model.Friendship
	if err := r.db.WithContext(ctx).First(&friendship, id).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) ExistsBetween(ctx context.Context, userID, otherID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, otherID, otherID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *friendshipRepository) ListIncomingPending(ctx context.Context, userID uint) ([]PendingRequest, error) {
	var requests []PendingRequest
	err := r.db.WithContext(ctx).
		Table("friends").
		Select("friends.id, users.username").
		Joins("JOIN users ON friends.user_id = users.id").
		Where("friends.friend_id = ? AND friends.status = ?", userID, model.FriendshipPending).
		Scan(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *friendshipRepository) ListAcceptedFriends(ctx context.Context, userID uint) ([]FriendEntry, error) {
	var friends []FriendEntry
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username").
		Joins("JOIN friends ON (friends.user_id = users.id AND friends.friend_id = ?) OR (friends.friend_id = users.id AND friends.user_id = ?)",
			userID, userID).
		Where("friends.status = ?", model.FriendshipAccepted).
		Scan(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *friendshipRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Friendship{}, id).Error
}
