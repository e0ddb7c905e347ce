// file: internals/middlewares/auth/blacklist.go
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklist stores revoked access tokens in Redis until they expire on
// their own. Keys are hashes of the raw token so the store never holds a
// usable credential.
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

func blacklistKey(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return "auth:blacklist:" + hex.EncodeToString(sum[:])
}

// Revoke marks a token as unusable for ttl. A non-positive ttl is clamped to
// one minute so logout always sticks.
func (b *TokenBlacklist) Revoke(ctx context.Context, rawToken string, ttl time.Duration) error {
	if b == nil || b.rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return b.rdb.Set(ctx, blacklistKey(rawToken), "1", ttl).Err()
}

// IsRevoked reports whether the token has been revoked. Redis failures are
// returned to the caller; the middleware treats them as "not revoked" so a
// cache outage does not lock everyone out.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	if b == nil || b.rdb == nil {
		return false, nil
	}
	n, err := b.rdb.Exists(ctx, blacklistKey(rawToken)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Checker adapts the blacklist to the AuthJWT option signature.
func (b *TokenBlacklist) Checker() func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()
		return b.IsRevoked(ctx, rawToken)
	}
}
