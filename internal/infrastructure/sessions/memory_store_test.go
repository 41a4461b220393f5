package sessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/infrastructure/sessions"
)

func principal(sessionID string) *entity.Principal {
	return &entity.Principal{
		SessionID: sessionID,
		UserID:    "u1",
		Role:      entity.RoleManager,
		IssuedAt:  time.Now(),
	}
}

func TestMemoryStore_SetCurrentClear(t *testing.T) {
	store := sessions.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, principal("s1"), time.Hour))

	p, err := store.Current(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "u1", p.UserID)

	require.NoError(t, store.Clear(ctx, "s1"))
	p, err = store.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, p, "cleared session reads as none")
}

func TestMemoryStore_AbsentAndExpired(t *testing.T) {
	store := sessions.NewMemoryStore()
	ctx := context.Background()

	p, err := store.Current(ctx, "never-set")
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, store.Set(ctx, principal("s2"), -time.Second))
	p, err = store.Current(ctx, "s2")
	require.NoError(t, err)
	assert.Nil(t, p, "expired session reads as none")
}

func TestMemoryStore_CorruptDataReadsAsNone(t *testing.T) {
	store := sessions.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, principal("s3"), time.Hour))
	store.Corrupt("s3")

	p, err := store.Current(ctx, "s3")
	require.NoError(t, err, "malformed data is never an error")
	assert.Nil(t, p)
}

func TestDecodePrincipal(t *testing.T) {
	p, ok := sessions.DecodePrincipal([]byte(`{"session_id":"s","user_id":"u","role":"sales"}`))
	require.True(t, ok)
	assert.Equal(t, "u", p.UserID)

	_, ok = sessions.DecodePrincipal([]byte(`{broken`))
	assert.False(t, ok)

	_, ok = sessions.DecodePrincipal([]byte(`{"session_id":"s"}`))
	assert.False(t, ok, "payload without identity fields is malformed")
}
