// file: internals/middlewares/auth/blacklist_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlacklist(t *testing.T) (*TokenBlacklist, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewTokenBlacklist(rdb), mr
}

func TestRevokeThenIsRevoked(t *testing.T) {
	bl, _ := newTestBlacklist(t)
	ctx := context.Background()

	revoked, err := bl.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "token-a", time.Hour))

	revoked, err = bl.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	// a different token is unaffected
	revoked, err = bl.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeExpires(t *testing.T) {
	bl, mr := newTestBlacklist(t)
	ctx := context.Background()

	require.NoError(t, bl.Revoke(ctx, "token-a", time.Minute))
	mr.FastForward(2 * time.Minute)

	revoked, err := bl.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeClampsNonPositiveTTL(t *testing.T) {
	bl, _ := newTestBlacklist(t)
	ctx := context.Background()

	require.NoError(t, bl.Revoke(ctx, "token-a", 0))

	revoked, err := bl.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestStoreNeverHoldsRawToken(t *testing.T) {
	bl, mr := newTestBlacklist(t)
	require.NoError(t, bl.Revoke(context.Background(), "secret-jwt-value", time.Hour))

	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "secret-jwt-value")
	}
}

func TestNilClientIsNoop(t *testing.T) {
	var bl *TokenBlacklist
	ctx := context.Background()

	assert.NoError(t, bl.Revoke(ctx, "x", time.Hour))
	revoked, err := bl.IsRevoked(ctx, "x")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
