package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// revokedKeyPrefix namespaces revocation keys in a shared Redis database.
const revokedKeyPrefix = "revoked:"

// redisRevocationList is a [RevocationList] shared by every server instance
// connected to the same Redis. Each revoked token is stored under the hash
// of its value with a TTL equal to the token's remaining lifetime.
type redisRevocationList struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisRevocationList returns a [RevocationList] backed by client.
func NewRedisRevocationList(client redis.UniversalClient) RevocationList {
	return &redisRevocationList{
		client: client,
		now:    time.Now,
	}
}

func (r *redisRevocationList) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	// SET overwrites, so revoking twice only refreshes the same entry
	if err := r.client.Set(ctx, revokedKey(token), 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRevocationUnavailable, err)
	}

	return nil
}

func (r *redisRevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRevocationUnavailable, err)
	}

	return n > 0, nil
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}
