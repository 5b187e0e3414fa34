package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// LockerPort is a best-effort mutual exclusion primitive used to serialize
// the check-then-write window of basket mutations on one (scope, product)
// key. Acquire is a single attempt; callers do not poll.
type LockerPort interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
