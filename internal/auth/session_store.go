package auth

import (
	"context"
	"time"

	"focusapp/internal/cache"
)

const revokedSessionKeyPrefix = "revoked_session:"

// SessionStoreInterface defines the interface for session revocation storage.
type SessionStoreInterface interface {
	RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionStore tracks logged-out session token IDs in Redis. Cookies cannot
// be invalidated server-side, so logout writes the token ID here and the
// auth middleware rejects revoked tokens until they expire on their own.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// RevokeSession marks a session token ID as logged out until its expiry.
func (s *SessionStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := revokedSessionKeyPrefix + tokenID
	// Store a simple marker
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsSessionRevoked checks if a session token ID has been logged out.
func (s *SessionStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedSessionKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // Not revoked if redis unavailable (fail safe)
	}
	return data != nil, nil
}
