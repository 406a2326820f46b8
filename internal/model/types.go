package model

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	KindRequest  EventKind = "request"
	KindResponse EventKind = "response"
)

// LogEntry is one submitted journal snippet. ID, Seq and CreatedAt are
// assigned by the Store at creation and never change. RequestNumber and
// ResponseNumber are derived ranks, recomputed in full on every change to
// the collection; 0 means "no rank".
type LogEntry struct {
	ID          string     `json:"id"`
	Seq         int        `json:"seq"`
	Raw         string     `json:"raw"`
	FirstColumn string     `json:"firstColumn"`
	HasRequest  bool       `json:"hasRequest"`
	HasResponse bool       `json:"hasResponse"`
	RequestTS   *time.Time `json:"requestTs,omitempty"`
	ResponseTS  *time.Time `json:"responseTs,omitempty"`

	RequestNumber  int `json:"requestNumber,omitempty"`
	ResponseNumber int `json:"responseNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Range is the tightest integer interval covering an entry's non-zero
// numbers. The zero Range is invalid and means "no numbers".
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Valid() bool { return r.Min > 0 }

// Overlaps reports whether two valid ranges intersect. An invalid range
// overlaps nothing, including another invalid range.
func (r Range) Overlaps(o Range) bool {
	if !r.Valid() || !o.Valid() {
		return false
	}
	return !(r.Max < o.Min || r.Min > o.Max)
}

// NumberRange returns the entry's range over its assigned numbers.
func (e LogEntry) NumberRange() Range {
	var r Range
	set := func(n int) {
		if n <= 0 {
			return
		}
		if !r.Valid() || n < r.Min {
			r.Min = n
		}
		if n > r.Max {
			r.Max = n
		}
	}
	set(e.RequestNumber)
	set(e.ResponseNumber)
	return r
}

func (e LogEntry) PrettyJSON() string {
	b, _ := json.MarshalIndent(e, "", "  ")
	return string(b)
}

// TableGroup is a cluster of entries whose number ranges are transitively
// connected (overlapping or adjacent). Groups are rebuilt from scratch on
// every collection change and never mutated incrementally.
type TableGroup struct {
	Entries   []LogEntry `json:"entries"`
	MinNumber int        `json:"minNumber"`
	MaxNumber int        `json:"maxNumber"`
}

func (g TableGroup) Bounds() Range { return Range{Min: g.MinNumber, Max: g.MaxNumber} }

// Store owns the entry collection. The TUI update loop is the only logical
// writer, but ingest replay delivers from another goroutine, so access is
// guarded.
type Store struct {
	mu      sync.RWMutex
	entries []LogEntry
	cap     int
	nextSeq int
	total   uint64 // total submissions ever accepted
	dropped uint64 // evicted once over capacity
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = 10000
	}
	return &Store{cap: capacity}
}

// Add assigns identity to the entry and appends it. The oldest entry is
// evicted when the collection is at capacity.
func (s *Store) Add(e LogEntry) LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	e.ID = uuid.NewString()
	e.Seq = s.nextSeq
	e.CreatedAt = time.Now()
	if len(s.entries) >= s.cap {
		s.entries = s.entries[1:]
		s.dropped++
	}
	s.entries = append(s.entries, e)
	s.total++
	return e
}

// Remove deletes the entry with the given id and reports whether it was
// present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear discards every entry. Idempotent; counters keep lifetime totals.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Snapshot returns a copy of the collection in creation order plus the
// lifetime accepted/dropped counters.
func (s *Store) Snapshot() ([]LogEntry, uint64, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out, s.total, s.dropped
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) Cap() int { return s.cap }
