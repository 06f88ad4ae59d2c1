package service

import (
	"context"
	"time"

	"interview-platform-be/internal/constant"

	"github.com/redis/go-redis/v9"
)

// FinalizeLocker serializes finalization passes across all server instances.
type FinalizeLocker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

const finalizeLockTTL = 30 * time.Second

type redisFinalizeLocker struct {
	rdb   *redis.Client
	owner string
}

func NewRedisFinalizeLocker(rdb *redis.Client, owner string) FinalizeLocker {
	return &redisFinalizeLocker{rdb: rdb, owner: owner}
}

// Acquire takes the exclusive marker with SET NX. The TTL bounds how long a
// crashed holder can block the next pass.
func (l *redisFinalizeLocker) Acquire(ctx context.Context) (bool, error) {
	return l.rdb.SetNX(ctx, constant.FinalizeLockKey, l.owner, finalizeLockTTL).Result()
}

func (l *redisFinalizeLocker) Release(ctx context.Context) error {
	return l.rdb.Del(ctx, constant.FinalizeLockKey).Err()
}
