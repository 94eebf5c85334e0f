package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// memoryRevocationList is a process-local [RevocationList]. Entries expire
// after the configured token lifetime, which is never shorter than the
// remaining lifetime of any token being revoked.
type memoryRevocationList struct {
	tokens *expirable.LRU[string, struct{}]
	now    func() time.Time
}

// NewMemoryRevocationList returns a [RevocationList] kept in process memory.
// ttl must be at least the lifetime of issued tokens.
func NewMemoryRevocationList(ttl time.Duration) RevocationList {
	return &memoryRevocationList{
		// size 0 means unbounded; entries leave only by expiry
		tokens: expirable.NewLRU[string, struct{}](0, nil, ttl),
		now:    time.Now,
	}
}

func (m *memoryRevocationList) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	// an expired token is rejected by verification already
	if !expiresAt.IsZero() && !m.now().Before(expiresAt) {
		return nil
	}

	m.tokens.Add(token, struct{}{})
	return nil
}

func (m *memoryRevocationList) IsRevoked(_ context.Context, token string) (bool, error) {
	return m.tokens.Contains(token), nil
}
