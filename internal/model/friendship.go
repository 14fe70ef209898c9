package model

import "time"

// Friendship status values. A rejected request is deleted rather than
// stored, so only these two states ever appear.
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship stores an undirected relationship as a single directed row:
// UserID sent the request, FriendID received it. Queries that need the
// symmetric view match either direction.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	FriendID  uint      `json:"friend_id" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the original table name used by the schema.
func (Friendship) TableName() string {
	return "friends"
}
