package services

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
)

const purchaseLockExpiry = 30 * time.Second

// Locker serializes purchases per post and guards reconciler sweeps against
// overlapping runs across instances.
type Locker struct {
	rs *redsync.Redsync
}

func NewLocker(rs *redsync.Redsync) *Locker {
	return &Locker{rs: rs}
}

// WithPostLock runs fn while holding the purchase mutex for the post. A busy
// lock means another purchase on the same post is in flight; callers get
// ErrLockBusy instead of waiting.
func (l *Locker) WithPostLock(ctx context.Context, postID uuid.UUID, fn func() error) error {
	mutex := l.rs.NewMutex(
		"purchase_lock:post:"+postID.String(),
		redsync.WithExpiry(purchaseLockExpiry),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return ErrLockBusy
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return fn()
}

// TrySweepLock acquires the mutex for one sweep type. It returns false when
// another instance holds it; the caller skips the run and the next schedule
// is the retry.
func (l *Locker) TrySweepLock(ctx context.Context, sweep string, expiry time.Duration) (func(), bool) {
	mutex := l.rs.NewMutex(
		"sweep_lock:"+sweep,
		redsync.WithExpiry(expiry),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, false
	}
	return func() { _, _ = mutex.UnlockContext(ctx) }, true
}
