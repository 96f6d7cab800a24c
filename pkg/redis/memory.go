package redis

import (
	"context"
	"sync"
	"time"
)

type memoryBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryBlacklist is used when no Redis host is configured
func NewMemoryBlacklist() TokenBlacklist {
	return &memoryBlacklist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (b *memoryBlacklist) BlacklistToken(_ context.Context, tokenID string, expiry time.Duration) error {
	if expiry <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for id, until := range b.entries {
		if !now.Before(until) {
			delete(b.entries, id)
		}
	}
	b.entries[tokenID] = now.Add(expiry)
	return nil
}

func (b *memoryBlacklist) IsTokenBlacklisted(_ context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	until, ok := b.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !b.now().Before(until) {
		delete(b.entries, tokenID)
		return false, nil
	}
	return true, nil
}
