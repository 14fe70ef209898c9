package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"focusapp/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// ResetDailyXPIfStale zeroes the user's XP and stamps last_xp_update when
	// the stored date is NULL or before today. Zero rows affected means the
	// reset already happened today.
	ResetDailyXPIfStale(ctx context.Context, userID uint, today time.Time) error
	// ResetAllXP zeroes every user's XP unconditionally.
	ResetAllXP(ctx context.Context) (int64, error)
	AddXP(ctx context.Context, userID uint, points int) error
	// LevelUpIfEligible bumps the level by one when the user's XP has reached
	// threshold. At most one increment per call.
	LevelUpIfEligible(ctx context.Context, userID uint, threshold int) error
	TopByXP(ctx context.Context, limit int) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ResetDailyXPIfStale(ctx context.Context, userID uint, today time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND (last_xp_update IS NULL OR last_xp_update < ?)", userID, today).
		Updates(map[string]interface{}{
			"xp":             0,
			"last_xp_update": today,
		}).Error
}

func (r *userRepository) ResetAllXP(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("1 = 1").
		Update("xp", 0)
	return res.RowsAffected, res.Error
}

func (r *userRepository) AddXP(ctx context.Context, userID uint, points int) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("xp", gorm.Expr("xp + ?", points)).Error
}

func (r *userRepository) LevelUpIfEligible(ctx context.Context, userID uint, threshold int) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND xp >= ?", userID, threshold).
		Update("level", gorm.Expr("level + 1")).Error
}

func (r *userRepository) TopByXP(ctx context.Context, limit int) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Order("xp DESC, id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
