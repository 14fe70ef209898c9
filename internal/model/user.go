package model

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	XP           int        `json:"xp" gorm:"not null;default:0"`
	Level        int        `json:"level" gorm:"not null;default:1"`
	LastXPUpdate *time.Time `json:"last_xp_update,omitempty" gorm:"type:date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:UserID"`
}
