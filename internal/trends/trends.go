// Package trends keeps a session-local, in-memory list of recent
// queries. Nothing here is persisted; the log dies with the process.
package trends

import (
	"sort"
	"sync"
	"time"
)

// #region entry

// Entry records one pipeline run.
type Entry struct {
	Query           string
	MatchedEntities []string
	Accepted        bool
	At              time.Time
}

// #endregion entry

// #region log

// Log is a bounded, mutex-guarded trend list. Oldest entries are evicted
// once the capacity is reached.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// NewLog creates a trend log holding at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 100
	}
	return &Log{capacity: capacity}
}

// Record appends an entry, evicting the oldest when full.
func (l *Log) Record(entry Entry) {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// #endregion log

// #region top-entities

// EntityCount pairs an entity name with how often it appeared in
// accepted queries.
type EntityCount struct {
	Entity string
	Count  int
}

// TopEntities returns the n most frequently matched entities across the
// session, ties broken alphabetically for determinism.
func (l *Log) TopEntities(n int) []EntityCount {
	l.mu.Lock()
	counts := make(map[string]int)
	for _, e := range l.entries {
		for _, name := range e.MatchedEntities {
			counts[name]++
		}
	}
	l.mu.Unlock()

	out := make([]EntityCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, EntityCount{Entity: name, Count: count})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Entity < out[b].Entity
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// #endregion top-entities
