package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejapp/backend/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndLookupUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "john@example.com", "hashed")
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, created.IsActive)

	byEmail, err := s.UserByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := s.UserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)
}

func TestUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.UserByID(context.Background(), 12345)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDuplicateEmailFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "john@example.com", "hashed")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, "john@example.com", "other")
	assert.Error(t, err)
}

func TestItemsByOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	john, err := s.CreateUser(ctx, "john@example.com", "hashed")
	require.NoError(t, err)
	jane, err := s.CreateUser(ctx, "jane@example.com", "hashed")
	require.NoError(t, err)

	first, err := s.CreateItem(ctx, john.ID, "first")
	require.NoError(t, err)
	second, err := s.CreateItem(ctx, john.ID, "second")
	require.NoError(t, err)
	_, err = s.CreateItem(ctx, jane.ID, "other")
	require.NoError(t, err)

	items, err := s.ItemsByOwner(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0])
	assert.Equal(t, second, items[1])

	empty, err := s.ItemsByOwner(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
