package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

// AdminsKey holds the admin list when PERSIST_ADMINS is enabled.
const AdminsKey = "s_hub_admins"

// AdminRepository owns the admin collection. By default it lives only in
// memory and every restart goes back to the seed.
type AdminRepository struct {
	mu     sync.RWMutex
	admins []domain.AdminProfile
	kv     storage.KV // nil unless admins are persisted
	log    *zap.Logger
}

// NewAdminRepository creates an in-memory repository holding a copy of seed.
func NewAdminRepository(seed []domain.AdminProfile) *AdminRepository {
	return &AdminRepository{admins: cloneAll(seed), log: zap.NewNop()}
}

// NewPersistentAdminRepository mirrors the collection to kv. A missing entry
// is seeded and written; a corrupt one falls back to seed without writing.
func NewPersistentAdminRepository(ctx context.Context, kv storage.KV, seed []domain.AdminProfile, log *zap.Logger) (*AdminRepository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &AdminRepository{kv: kv, log: log}

	raw, err := kv.Get(ctx, AdminsKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		r.admins = cloneAll(seed)
		if err := r.saveLocked(ctx); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("load admins: %w", err)
	default:
		var stored []domain.AdminProfile
		if err := json.Unmarshal([]byte(raw), &stored); err != nil || len(stored) == 0 {
			log.Warn("discarding unusable stored admins, using seed", zap.Error(err))
			r.admins = cloneAll(seed)
		} else {
			r.admins = stored
		}
	}
	return r, nil
}

// List returns copies of all admins in seed order.
func (r *AdminRepository) List() []domain.AdminProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.admins)
}

// FindByCredentials is a linear scan for an exact match on both fields.
func (r *AdminRepository) FindByCredentials(username, password string) (domain.AdminProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.Password == "" {
			continue
		}
		if a.Username == username && a.Password == password {
			return a.Clone(), true
		}
	}
	return domain.AdminProfile{}, false
}

// GetByID returns one admin.
func (r *AdminRepository) GetByID(id string) (domain.AdminProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.AdminProfile{}, domain.ErrAdminNotFound
	}
	return r.admins[i].Clone(), nil
}

// Update applies fn to the admin with id. If fn fails nothing changes.
func (r *AdminRepository) Update(ctx context.Context, id string, fn func(*domain.AdminProfile) error) (domain.AdminProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.AdminProfile{}, domain.ErrAdminNotFound
	}

	prev := r.admins[i]
	next := prev.Clone()
	if err := fn(&next); err != nil {
		return domain.AdminProfile{}, err
	}
	next.ID = prev.ID

	r.admins[i] = next
	if err := r.saveLocked(ctx); err != nil {
		r.admins[i] = prev
		return domain.AdminProfile{}, err
	}
	return next.Clone(), nil
}

// Persistent reports whether edits survive a restart.
func (r *AdminRepository) Persistent() bool {
	return r.kv != nil
}

func (r *AdminRepository) saveLocked(ctx context.Context) error {
	if r.kv == nil {
		return nil
	}
	raw, err := json.Marshal(r.admins)
	if err != nil {
		return fmt.Errorf("marshal admins: %w", err)
	}
	if err := r.kv.Set(ctx, AdminsKey, string(raw)); err != nil {
		r.log.Error("failed to save admins", zap.Error(err))
		return fmt.Errorf("save admins: %w", err)
	}
	return nil
}

func (r *AdminRepository) indexOf(id string) int {
	for i := range r.admins {
		if r.admins[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(in []domain.AdminProfile) []domain.AdminProfile {
	out := make([]domain.AdminProfile, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}
