package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/storely/basket/internal/core/port"
)

// Locker is a single-attempt SET NX lock with a TTL guarding against
// holders that never release. It serializes basket line mutations; it is
// not a fault-tolerant distributed lock.
type Locker struct {
	client *Client
}

func NewLocker(client *Client) port.LockerPort {
	return &Locker{client: client}
}

func (l *Locker) key(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, l.key(key), "1", ttl)
}

func (l *Locker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key))
}
