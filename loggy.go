// Package loggy is an in-process, memory-resident log sink. Callers push
// textual or error-derived entries; the sink retains them up to a configured
// threshold and a background timer evicts the oldest once the threshold is
// crossed. Nothing survives the process.
package loggy

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/strvmarv/Loggy/internal/callstack"
	"github.com/strvmarv/Loggy/internal/config"
	"github.com/strvmarv/Loggy/internal/monitoring"
)

// Config is the purge policy for one Logger.
type Config struct {
	PurgeInterval  time.Duration // how often the eviction timer fires
	MaxEntries     int           // size threshold that arms a purge pass
	PurgePercent   int           // share of entries removed per pass, 0-100
	MetricsEnabled bool          // register prometheus collectors
}

// Defaults mirrors the documented environment defaults: a 10s interval,
// 10000 entries, 30 percent per pass.
func Defaults() Config {
	return fromPurge(config.Defaults())
}

func fromPurge(p config.Purge) Config {
	return Config{
		PurgeInterval:  time.Duration(p.IntervalSeconds) * time.Second,
		MaxEntries:     p.MaxEntries,
		PurgePercent:   p.Percent,
		MetricsEnabled: p.MetricsEnabled,
	}
}

// Logger is the log sink facade. Safe for concurrent use from any number of
// goroutines.
type Logger struct {
	store  *entryStore
	purge  *purgeController
	logger *zap.Logger
}

// New builds a Logger configured from the environment. A nil zap logger is
// replaced with a nop logger.
func New(logger *zap.Logger) *Logger {
	return NewWithConfig(fromPurge(config.Load()), logger)
}

// NewWithConfig builds a Logger with an explicit policy. An unusable
// PurgeInterval is reported by the first Log call, not here; the timer is
// only constructed lazily.
func NewWithConfig(cfg Config, logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MetricsEnabled {
		monitoring.Init()
	}
	store := newEntryStore()
	return &Logger{
		store:  store,
		purge:  newPurgeController(store, cfg, logger),
		logger: logger,
	}
}

var (
	defaultOnce sync.Once
	defaultInst *Logger
)

// Default returns the process-wide Logger, creating it from the environment
// on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultInst = New(nil)
	})
	return defaultInst
}

// Log records a message entry and returns its id.
func (l *Logger) Log(message string, opts ...LogOptions) (uuid.UUID, error) {
	if strings.TrimSpace(message) == "" {
		return uuid.Nil, ErrBlankMessage
	}
	return l.append(message, logOptions(opts))
}

// LogError records an error entry. The error is rendered to text immediately
// and never referenced afterwards.
func (l *Logger) LogError(err error, opts ...LogOptions) (uuid.UUID, error) {
	if err == nil {
		return uuid.Nil, ErrNilError
	}
	return l.append(formatError(err), logOptions(opts))
}

func (l *Logger) append(message string, opt LogOptions) (uuid.UUID, error) {
	if err := l.purge.EnsureStarted(); err != nil {
		return uuid.Nil, err
	}
	ref := opt.ReferenceID
	if ref == uuid.Nil {
		ref = uuid.New()
	}
	caller := opt.Caller
	if caller == "" {
		caller = callstack.Caller(2)
	}
	if caller == "" {
		caller = "unknown"
	}
	e := Entry{
		ID:          uuid.New(),
		ReferenceID: ref,
		Caller:      caller,
		Timestamp:   time.Now().UTC(),
		Message:     message,
	}
	l.store.Append(e)
	monitoring.ObserveAppend(l.store.Len())
	return e.ID, nil
}

// Dump returns buffered entries oldest-first, optionally filtered.
func (l *Logger) Dump(opts ...DumpOptions) []Entry {
	opt := dumpOptions(opts)
	return l.store.Scan(opt.ReferenceID, opt.Caller)
}

// DumpStrings renders each matching entry as
// "<timestamp> -- <caller> -- <message>".
func (l *Logger) DumpStrings(opts ...DumpOptions) []string {
	entries := l.Dump(opts...)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

// DumpRecords flattens matching entries into Records.
func (l *Logger) DumpRecords(opts ...DumpOptions) []Record {
	entries := l.Dump(opts...)
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = Record{
			Timestamp:   e.Timestamp,
			ReferenceID: e.ReferenceID,
			Caller:      e.Caller,
			Message:     e.Message,
		}
	}
	return out
}

// Clear drops every buffered entry.
func (l *Logger) Clear() {
	n := l.store.Clear()
	monitoring.ObservePurge(monitoring.TriggerClear, n, 0)
	l.logger.Debug("store cleared", zap.Int("removed", n))
}

// Purge removes up to count oldest entries and returns how many were
// actually removed. count == 0 is a no-op.
func (l *Logger) Purge(count int) (int, error) {
	if count < 0 {
		return 0, ErrNegativeCount
	}
	removed := 0
	for i := 0; i < count; i++ {
		if _, ok := l.store.RemoveOldest(); !ok {
			break
		}
		removed++
	}
	if removed > 0 {
		monitoring.ObservePurge(monitoring.TriggerManual, removed, l.store.Len())
	}
	return removed, nil
}

// Len reports the current entry count. Advisory under concurrent logging.
func (l *Logger) Len() int {
	return l.store.Len()
}

// Caller returns the immediate caller's identity, best-effort; empty when
// the stack cannot be resolved.
func (l *Logger) Caller() string {
	return callstack.Caller(1)
}

// Close stops the background purge timer. Optional; the timer otherwise
// runs until process exit.
func (l *Logger) Close() {
	l.purge.Close()
}

func logOptions(opts []LogOptions) LogOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return LogOptions{}
}

func dumpOptions(opts []DumpOptions) DumpOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return DumpOptions{}
}
