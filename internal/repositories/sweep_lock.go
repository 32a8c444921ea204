package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
)

const sweepLockKey = "approval_engine:sweep_lock"

// SweepLockRepository is a Redis SETNX lease that keeps at most one timeout
// sweeper active across replicas. Losing the lock means another instance is
// sweeping this cycle; correctness never depends on it, the version-checked
// transitions do the arbitration.
type SweepLockRepository struct {
	client *redis.Client
	ttl    time.Duration
	holder string
}

// NewSweepLockRepository creates a lock with the given lease duration.
// The holder value identifies this instance in the lock key.
func NewSweepLockRepository(client *redis.Client, ttl time.Duration, holder string) *SweepLockRepository {
	return &SweepLockRepository{client: client, ttl: ttl, holder: holder}
}

// Acquire attempts to take the sweep lease. Returns false when another
// holder owns it.
func (r *SweepLockRepository) Acquire(ctx context.Context) (bool, error) {
	acquired, err := r.client.SetNX(ctx, sweepLockKey, r.holder, r.ttl).Result()
	if err != nil {
		logger.Log.Errorw("failed to acquire sweep lock", "error", err)
		return false, err
	}
	return acquired, nil
}

// Release gives the lease back if this instance still holds it.
func (r *SweepLockRepository) Release(ctx context.Context) error {
	val, err := r.client.Get(ctx, sweepLockKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	if val != r.holder {
		return nil
	}
	if err := r.client.Del(ctx, sweepLockKey).Err(); err != nil {
		logger.Log.Errorw("failed to release sweep lock", "error", err)
		return err
	}
	return nil
}
