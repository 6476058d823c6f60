package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idms/employee-portal/internal/domain"
)

func TestManager_CreateAndGet(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "IDMS123")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "IDMS123", sess.EmployeeID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	got, err := mgr.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.EmployeeID, got.EmployeeID)
}

func TestManager_UnknownSession(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)

	got, err := mgr.Get(context.Background(), "sess_missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = mgr.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, time.Hour, false)
	ctx := context.Background()

	expired := &domain.Session{
		ID:         "sess_expired",
		EmployeeID: "IDMS123",
		CreatedAt:  time.Now().Add(-48 * time.Hour),
		ExpiresAt:  time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, store.Create(ctx, expired, time.Hour))

	got, err := mgr.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_DestroyIsIdempotent(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)
	ctx := context.Background()

	sess, err := mgr.Create(ctx, "IDMS123")
	require.NoError(t, err)

	require.NoError(t, mgr.Destroy(ctx, sess.ID))
	require.NoError(t, mgr.Destroy(ctx, sess.ID))
	require.NoError(t, mgr.Destroy(ctx, ""))

	got, err := mgr.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_SessionIDsAreUnique(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sess, err := mgr.Create(ctx, "IDMS123")
		require.NoError(t, err)
		assert.False(t, seen[sess.ID])
		seen[sess.ID] = true
	}
}
