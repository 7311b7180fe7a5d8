package loggy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded log item. Entries are immutable once stored; the
// store only ever appends them or removes the oldest.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	ReferenceID uuid.UUID `json:"reference_id"`
	Caller      string    `json:"caller"`
	Timestamp   time.Time `json:"timestamp"`
	Message     string    `json:"message"`
}

// String renders the entry for display.
func (e Entry) String() string {
	return fmt.Sprintf("%s -- %s -- %s", e.Timestamp.Format(time.RFC3339Nano), e.Caller, e.Message)
}

// Record is the flattened dump shape.
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	ReferenceID uuid.UUID `json:"reference_id"`
	Caller      string    `json:"caller"`
	Message     string    `json:"message"`
}

// LogOptions carries the optional parts of a Log call.
type LogOptions struct {
	ReferenceID uuid.UUID // zero value means auto-generate
	Caller      string    // empty means resolve from the call stack
}

// DumpOptions filters dump output. Both filters apply as AND when set.
type DumpOptions struct {
	ReferenceID uuid.UUID // zero value means no reference filter
	Caller      string    // empty means no caller filter; matched case-insensitively
}
