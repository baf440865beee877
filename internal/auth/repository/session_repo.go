package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

const sessionKeyPrefix = "session:" // session:{token} -> admin id

// SessionRepository binds opaque tokens to admin ids. Sessions never expire;
// logout is the only way to end one.
type SessionRepository struct {
	kv storage.KV
}

func NewSessionRepository(kv storage.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

// Create stores a new session for adminID and returns its token.
func (r *SessionRepository) Create(ctx context.Context, adminID string) (string, error) {
	token := uuid.New().String()
	if err := r.kv.Set(ctx, r.key(token), adminID); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve returns the admin id bound to token.
func (r *SessionRepository) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrSessionNotFound
	}
	adminID, err := r.kv.Get(ctx, r.key(token))
	if errors.Is(err, storage.ErrNotFound) {
		return "", domain.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return adminID, nil
}

// Delete ends a session. Unknown tokens are ignored.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.kv.Delete(ctx, r.key(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(token string) string {
	return sessionKeyPrefix + token
}
