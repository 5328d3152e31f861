package domain

import "time"

// DefaultLedgerCap is the number of point log entries kept when no cap is configured
const DefaultLedgerCap = 20

// PointLogType classifies a ledger entry
type PointLogType string

const (
	// PointLogIncome - points earned
	PointLogIncome PointLogType = "income"
	// PointLogExpense - points spent
	PointLogExpense PointLogType = "expense"
)

// PointLogEntry is one point-earning or point-spending event
type PointLogEntry struct {
	ID     int64        `json:"id"`
	Type   PointLogType `json:"type" validate:"required,oneof=income expense"`
	Title  string       `json:"title" validate:"required,max=100"`
	Amount int          `json:"amount"`
	Time   time.Time    `json:"time"`
}

// Ledger is the bounded, newest-first point log.
// Entry ids come from the wall clock in milliseconds and are bumped past the
// last issued id so they strictly increase even within the same millisecond.
type Ledger struct {
	entries []PointLogEntry
	limit   int
	lastID  int64
}

// NewLedger builds a ledger from stored entries, truncating to limit.
// A limit <= 0 falls back to DefaultLedgerCap.
func NewLedger(entries []PointLogEntry, limit int) *Ledger {
	if limit <= 0 {
		limit = DefaultLedgerCap
	}
	l := &Ledger{limit: limit}
	for _, entry := range entries {
		if entry.ID > l.lastID {
			l.lastID = entry.ID
		}
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	l.entries = make([]PointLogEntry, len(entries))
	copy(l.entries, entries)
	return l
}

// Append stamps the entry with a fresh id and time, prepends it and drops
// the oldest entries beyond the cap.
func (l *Ledger) Append(entry PointLogEntry, now time.Time) PointLogEntry {
	l.lastID = MonotonicMillis(now, l.lastID)
	entry.ID = l.lastID
	entry.Time = now

	entries := make([]PointLogEntry, 0, len(l.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, l.entries...)
	if len(entries) > l.limit {
		entries = entries[:l.limit]
	}
	l.entries = entries
	return entry
}

// History returns a copy of the entries, newest first
func (l *Ledger) History() []PointLogEntry {
	history := make([]PointLogEntry, len(l.entries))
	copy(history, l.entries)
	return history
}
