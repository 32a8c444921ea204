package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// ExpiredLister returns pending transactions whose deadline has passed.
// The result is a candidate list only; each transition goes back through
// the version-checked expiry path.
type ExpiredLister interface {
	ListExpired(ctx context.Context, now time.Time) ([]models.TransactionDB, error)
}

// Expirer drives a single transaction to EXPIRED.
type Expirer interface {
	Expire(ctx context.Context, transactionID uuid.UUID) (*models.TransactionSnapshot, error)
}

// SweepLocker coordinates sweep leadership across replicas. A nil locker
// means this instance always sweeps.
type SweepLocker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// TimeoutScheduler periodically retires pending transactions past their
// deadline. It is safe to run concurrently with in-flight decisions on the
// same transactions: whichever transition commits first wins, the loser
// observes a conflict or ErrTransactionNotPending and moves on.
type TimeoutScheduler struct {
	lister   ExpiredLister
	workflow Expirer
	locker   SweepLocker
	interval time.Duration
	now      func() time.Time
}

// NewTimeoutScheduler creates a new TimeoutScheduler.
func NewTimeoutScheduler(lister ExpiredLister, workflow Expirer, locker SweepLocker, interval time.Duration) *TimeoutScheduler {
	return &TimeoutScheduler{
		lister:   lister,
		workflow: workflow,
		locker:   locker,
		interval: interval,
		now:      time.Now,
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (s *TimeoutScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Log.Infow("timeout scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("timeout scheduler stopped")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				logger.Log.Errorw("sweep failed", "error", err)
			}
		}
	}
}

// Sweep expires every pending transaction past its deadline. Transactions
// that raced into a terminal state between listing and committing are
// skipped, never retried as new input.
func (s *TimeoutScheduler) Sweep(ctx context.Context) error {
	if s.locker != nil {
		acquired, err := s.locker.Acquire(ctx)
		if err != nil {
			return err
		}
		if !acquired {
			logger.Log.Debugw("sweep lock held elsewhere, skipping cycle")
			return nil
		}
		defer s.locker.Release(ctx)
	}

	txns, err := s.lister.ListExpired(ctx, s.now())
	if err != nil {
		return err
	}

	expired := 0
	for _, txn := range txns {
		_, err := s.workflow.Expire(ctx, txn.TransactionID)
		switch {
		case err == nil:
			expired++
		case errors.Is(err, ErrTransactionNotPending),
			errors.Is(err, ErrDeadlineNotReached),
			errors.Is(err, ErrConcurrentModification):
			// lost the race to a decision or another sweeper
		default:
			logger.Log.Errorw("failed to expire transaction", "transaction_id", txn.TransactionID, "error", err)
		}
	}

	if len(txns) > 0 {
		logger.Log.Infow("sweep finished", "candidates", len(txns), "expired", expired)
	}
	return nil
}
