// Package reminder rate-limits the periodic break reminder.
package reminder

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultInterval is the minimum time between reminders unless configured
// otherwise
const DefaultInterval = time.Hour

// store is the persistence the gate needs, satisfied by the settings service
type store interface {
	LastReminderAt(ctx context.Context) (int64, error)
	SetLastReminderAt(ctx context.Context, unixMilli int64) error
}

// Gate decides when the reminder may fire again. The showing flag stops a
// second banner from stacking on one that is still on screen.
type Gate struct {
	store    store
	interval time.Duration
	showing  atomic.Bool
}

// New creates a gate over the given store. A non-positive interval falls
// back to DefaultInterval.
func New(store store, interval time.Duration) *Gate {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Gate{store: store, interval: interval}
}

// Due reports whether enough time has passed since the reminder last fired.
// A store that has never recorded a fire is always due.
func (g *Gate) Due(ctx context.Context) (bool, error) {
	lastAt, err := g.store.LastReminderAt(ctx)
	if err != nil {
		return false, err
	}
	if lastAt <= 0 {
		return true, nil
	}
	elapsed := time.Since(time.UnixMilli(lastAt))
	return elapsed >= g.interval, nil
}

// TryShow claims the on-screen slot. It returns false when a reminder is
// already showing.
func (g *Gate) TryShow() bool {
	return g.showing.CompareAndSwap(false, true)
}

// Dismiss releases the on-screen slot
func (g *Gate) Dismiss() {
	g.showing.Store(false)
}

// MarkFired records now as the last fire time, restarting the interval
func (g *Gate) MarkFired(ctx context.Context) error {
	return g.store.SetLastReminderAt(ctx, time.Now().UnixMilli())
}
