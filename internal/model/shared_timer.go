package model

import "time"

// SharedTimer records that a timer was started with a friend tagged.
// Rows are written when a timer starts and never reconciled afterwards.
type SharedTimer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	FriendID  uint      `json:"friend_id" gorm:"not null"`
	StartTime time.Time `json:"start_time" gorm:"not null"`
	Minutes   int       `json:"minutes" gorm:"not null"`
}
