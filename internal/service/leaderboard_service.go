package service

import (
	"context"
	"encoding/json"
	"time"

	"focusapp/internal/cache"
	"focusapp/internal/repository"
)

const (
	leaderboardLimit    = 10
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
}

// LeaderboardService returns the top users by XP.
type LeaderboardService interface {
	Top(ctx context.Context) ([]LeaderboardEntry, error)
}

type leaderboardService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewLeaderboardService builds a LeaderboardService with repository and cache.
func NewLeaderboardService(userRepo repository.UserRepository, cache *cache.Client) LeaderboardService {
	return &leaderboardService{userRepo: userRepo, cache: cache}
}

// Top returns up to 10 users ordered by XP descending, user id ascending on
// ties. Results are cached briefly; the cache TTL is short enough that a
// session ending mid-window is only invisibly stale.
func (s *leaderboardService) Top(ctx context.Context) ([]LeaderboardEntry, error) {
	if data, _ := s.cache.Get(ctx, leaderboardCacheKey); data != nil {
		var cached []LeaderboardEntry
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.userRepo.TopByXP(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			Username: u.Username,
			Level:    u.Level,
			XP:       u.XP,
		})
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL)
	}
	return entries, nil
}
