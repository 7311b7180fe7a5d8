package loggy

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/strvmarv/Loggy/internal/monitoring"
)

// purgeController owns the eviction policy: a lazily started periodic timer
// that trims the oldest entries once the store crosses maxEntries.
type purgeController struct {
	store    *entryStore
	interval time.Duration
	max      int
	percent  int
	logger   *zap.Logger

	started atomic.Bool
	initMu  sync.Mutex // serializes first-time timer creation
	tickMu  sync.Mutex // at most one purge pass at a time
	closed  atomic.Bool
	done    chan struct{}
}

func newPurgeController(store *entryStore, cfg Config, logger *zap.Logger) *purgeController {
	return &purgeController{
		store:    store,
		interval: cfg.PurgeInterval,
		max:      cfg.MaxEntries,
		percent:  cfg.PurgePercent,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// EnsureStarted guarantees exactly one timer is running. It runs on every
// Log call, so the already-started path is a single atomic read. The
// first-call race is settled with TryLock: a caller that loses it returns
// immediately and the next Log call retries the start.
func (c *purgeController) EnsureStarted() error {
	if c.started.Load() {
		return nil
	}
	if !c.initMu.TryLock() {
		// Another goroutine is starting the timer right now.
		return nil
	}
	defer c.initMu.Unlock()
	if c.started.Load() {
		return nil
	}
	if c.interval <= 0 {
		return fmt.Errorf("interval %v: %w", c.interval, ErrTimerInit)
	}
	ticker := time.NewTicker(c.interval)
	go c.run(ticker)
	c.started.Store(true)
	c.logger.Info("purge timer started",
		zap.Duration("interval", c.interval),
		zap.Int("max_entries", c.max),
		zap.Int("percent", c.percent))
	return nil
}

func (c *purgeController) run(ticker *time.Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

// tick runs one purge pass. A tick that finds the previous pass still
// running is dropped, not queued.
func (c *purgeController) tick() {
	if !c.tickMu.TryLock() {
		return
	}
	defer c.tickMu.Unlock()

	n := c.store.Len()
	if n == 0 || n < c.max {
		return
	}
	want := purgeSize(n, c.percent)
	if want <= 0 {
		return
	}
	removed := 0
	for i := 0; i < want; i++ {
		if _, ok := c.store.RemoveOldest(); !ok {
			break
		}
		removed++
	}
	monitoring.ObservePurge(monitoring.TriggerTimer, removed, c.store.Len())
	c.logger.Debug("purge pass complete",
		zap.Int("size_before", n),
		zap.Int("removed", removed))
}

// purgeSize computes how many entries a pass removes. math.Round ties away
// from zero, so 15 entries at 30% purges 5.
func purgeSize(n, percent int) int {
	return int(math.Round(float64(n) * float64(percent) / 100))
}

// Close stops the timer goroutine. Idempotent. Never required for
// correctness; without it the timer simply dies with the process.
func (c *purgeController) Close() {
	if c.closed.CompareAndSwap(false, true) {
		close(c.done)
	}
}
