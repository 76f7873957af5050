package db

import (
	"context"
	"testing"
	"time"

	"leximax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(id, email string, xp int) *models.User {
	u := models.NewUser(id, id, email, "", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	u.XP = xp
	return u
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore()

	require.NoError(t, store.CreateUser(ctx, newTestUser("u1", "a@example.com", 0)))

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	byEmail, err := store.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = store.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestMemoryStoreRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore(newTestUser("u1", "a@example.com", 0))

	err := store.CreateUser(ctx, newTestUser("u2", "a@example.com", 0))
	assert.ErrorIs(t, err, models.ErrEmailInUse)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore(newTestUser("u1", "a@example.com", 0))

	u, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	u.CompletedMaxims = append(u.CompletedMaxims, "maxim1")
	u.XP = 99

	fresh, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, fresh.CompletedMaxims)
	assert.Zero(t, fresh.XP)
}

func TestMemoryStoreListUsersByXP(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore(
		newTestUser("low", "l@example.com", 10),
		newTestUser("high", "h@example.com", 500),
		newTestUser("mid", "m@example.com", 120),
	)

	users, err := store.ListUsers(ctx, 0)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"high", "mid", "low"}, []string{users[0].ID, users[1].ID, users[2].ID})

	top, err := store.ListUsers(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestSnapshotStoreWithoutRedis(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(NewMemoryUserStore(), nil)

	u := newTestUser("u1", "a@example.com", 0)
	require.NoError(t, store.CreateUser(ctx, u))
	u.XP = 40
	require.NoError(t, store.SaveUser(ctx, u))

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 40, got.XP)

	_, err = store.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = store.LoadSnapshot(ctx, "u1")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Equal(t, "leximax_user:u1", SnapshotKey("u1"))
}

func TestMemoryStoreListUsersBreaksTiesOnID(t *testing.T) {
	store := NewMemoryUserStore(
		newTestUser("c", "c@example.com", 100),
		newTestUser("a", "a@example.com", 100),
		newTestUser("b", "b@example.com", 100),
	)

	users, err := store.ListUsers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{users[0].ID, users[1].ID, users[2].ID})
}
