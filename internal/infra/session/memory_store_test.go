package session

import (
	"context"
	"testing"
	"time"

	"community/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.NewID()
	require.NoError(t, err)

	session := entity.NewSession(id, time.Now(), time.Hour)
	session.SetIdentity(&entity.User{Name: "havi", Email: "havi@gmail.com"})
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "havi@gmail.com", got.Identity().Email)
	assert.False(t, got.IsDirty())

	require.NoError(t, store.Delete(ctx, id))

	got, err = store.Load(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ExpiredSessionIsAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, entity.NewSession("sid", now, time.Minute)))

	now = now.Add(2 * time.Minute)
	got, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_LoadMissing(t *testing.T) {
	got, err := NewMemoryStore().Load(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, got)
}
