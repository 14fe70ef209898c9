package model

import "time"

// FocusSession is a timer interval opened by /start_timer and closed by
// /end_timer. EndTime, Focused and Reason stay NULL until the session is
// closed; a session whose end request never arrives stays open forever.
type FocusSession struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	StartTime time.Time  `json:"start_time" gorm:"not null"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Focused   *bool      `json:"focused,omitempty"`
	Reason    *string    `json:"reason,omitempty" gorm:"size:500"`
}

// TableName keeps the original table name used by the schema.
func (FocusSession) TableName() string {
	return "sessions"
}
