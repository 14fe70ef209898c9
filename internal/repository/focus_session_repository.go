package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"focusapp/internal/model"
)

// FocusSessionRepository defines timer session persistence operations.
type FocusSessionRepository interface {
	Create(ctx context.Context, session *model.FocusSession) error
	// Close stamps end_time/focused/reason on the session, scoped to the
	// owning user. Zero rows affected is not an error.
	Close(ctx context.Context, sessionID, userID uint, end time.Time, focused bool, reason string) error
	CreateSharedTimer(ctx context.Context, timer *model.SharedTimer) error
}

type focusSessionRepository struct {
	db *gorm.DB
}

// NewFocusSessionRepository builds a GORM-backed repository.
func NewFocusSessionRepository(db *gorm.DB) FocusSessionRepository {
	return &focusSessionRepository{db: db}
}

func (r *focusSessionRepository) Create(ctx context.Context, session *model.FocusSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *focusSessionRepository) Close(ctx context.Context, sessionID, userID uint, end time.Time, focused bool, reason string) error {
	return r.db.WithContext(ctx).Model(&model.FocusSession{}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Updates(map[string]interface{}{
			"end_time": end,
			"focused":  focused,
			"reason":   reason,
		}).Error
}

func (r *focusSessionRepository) CreateSharedTimer(ctx context.Context, timer *model.SharedTimer) error {
	return r.db.WithContext(ctx).Create(timer).Error
}
