package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

func TestAdminRepository_FindByCredentials(t *testing.T) {
	repo := NewAdminRepository(domain.SeedAdmins())

	t.Run("exact match", func(t *testing.T) {
		a, ok := repo.FindByCredentials("Silverhold", "Rian")
		require.True(t, ok)
		assert.Equal(t, "admin-1", a.ID)
	})

	t.Run("case matters", func(t *testing.T) {
		_, ok := repo.FindByCredentials("silverhold", "Rian")
		assert.False(t, ok)
		_, ok = repo.FindByCredentials("Silverhold", "rian")
		assert.False(t, ok)
	})

	t.Run("cross-matched pair fails", func(t *testing.T) {
		_, ok := repo.FindByCredentials("Silverhold", "Plerr321")
		assert.False(t, ok)
	})

	t.Run("empty stored password never matches", func(t *testing.T) {
		r := NewAdminRepository([]domain.AdminProfile{{ID: "a", Username: "nopass"}})
		_, ok := r.FindByCredentials("nopass", "")
		assert.False(t, ok)
	})
}

func TestAdminRepository_SeedIsCopied(t *testing.T) {
	seed := domain.SeedAdmins()
	repo := NewAdminRepository(seed)

	seed[0].Name = "mutated"
	seed[0].Hashtags[0] = "mutated"

	a, err := repo.GetByID("admin-1")
	require.NoError(t, err)
	assert.Equal(t, "SilverHold Official", a.Name)
	assert.Equal(t, "bismillahcalonustad", a.Hashtags[0])

	list := repo.List()
	list[0].Hashtags[0] = "again"
	a, _ = repo.GetByID("admin-1")
	assert.Equal(t, "bismillahcalonustad", a.Hashtags[0])
}

func TestAdminRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(domain.SeedAdmins())

	updated, err := repo.Update(ctx, "admin-2", func(a *domain.AdminProfile) error {
		a.Quote = "new quote"
		a.ID = "hijack"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-2", updated.ID)
	assert.Equal(t, "new quote", updated.Quote)

	t.Run("callback error leaves record untouched", func(t *testing.T) {
		_, err := repo.Update(ctx, "admin-2", func(a *domain.AdminProfile) error {
			a.Quote = "should not stick"
			return errors.New("nope")
		})
		require.Error(t, err)
		a, _ := repo.GetByID("admin-2")
		assert.Equal(t, "new quote", a.Quote)
	})

	t.Run("unknown admin", func(t *testing.T) {
		_, err := repo.Update(ctx, "ghost", func(*domain.AdminProfile) error { return nil })
		assert.ErrorIs(t, err, domain.ErrAdminNotFound)
	})

	assert.False(t, repo.Persistent())
}

func TestPersistentAdminRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds, writes and survives reopen", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		repo, err := NewPersistentAdminRepository(ctx, kv, domain.SeedAdmins(), nil)
		require.NoError(t, err)
		assert.True(t, repo.Persistent())

		_, err = repo.Update(ctx, "admin-1", func(a *domain.AdminProfile) error {
			a.Password = "changed"
			return nil
		})
		require.NoError(t, err)

		reopened, err := NewPersistentAdminRepository(ctx, kv, domain.SeedAdmins(), nil)
		require.NoError(t, err)
		_, ok := reopened.FindByCredentials("Silverhold", "changed")
		assert.True(t, ok)
	})

	t.Run("corrupt entry falls back to seed", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		require.NoError(t, kv.Set(ctx, AdminsKey, "not json"))

		repo, err := NewPersistentAdminRepository(ctx, kv, domain.SeedAdmins(), nil)
		require.NoError(t, err)
		assert.Len(t, repo.List(), 2)

		raw, _ := kv.Get(ctx, AdminsKey)
		assert.Equal(t, "not json", raw)
	})
}
