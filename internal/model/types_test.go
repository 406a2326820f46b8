package model

import (
	"testing"
)

func TestStoreAddAssignsIdentity(t *testing.T) {
	s := NewStore(10)
	a := s.Add(LogEntry{Raw: "a", FirstColumn: "a"})
	b := s.Add(LogEntry{Raw: "b", FirstColumn: "b"})
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("ids not unique: %q %q", a.ID, b.ID)
	}
	if b.Seq != a.Seq+1 {
		t.Fatalf("seq not monotonic: %d %d", a.Seq, b.Seq)
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("createdAt unset")
	}
}

func TestStoreClearIdempotent(t *testing.T) {
	s := NewStore(10)
	s.Add(LogEntry{Raw: "a", FirstColumn: "a"})
	s.Clear()
	first, total, _ := s.Snapshot()
	s.Clear()
	second, total2, _ := s.Snapshot()
	if len(first) != 0 || len(second) != 0 {
		t.Fatalf("clear left entries behind")
	}
	if total != total2 {
		t.Fatalf("lifetime counter changed across idempotent clears")
	}
}

func TestStoreCapEvictsOldest(t *testing.T) {
	s := NewStore(2)
	s.Add(LogEntry{FirstColumn: "1"})
	s.Add(LogEntry{FirstColumn: "2"})
	s.Add(LogEntry{FirstColumn: "3"})
	entries, total, dropped := s.Snapshot()
	if len(entries) != 2 || entries[0].FirstColumn != "2" {
		t.Fatalf("eviction wrong: %+v", entries)
	}
	if total != 3 || dropped != 1 {
		t.Fatalf("counters: total=%d dropped=%d", total, dropped)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore(10)
	a := s.Add(LogEntry{FirstColumn: "a"})
	if !s.Remove(a.ID) {
		t.Fatalf("remove reported missing entry")
	}
	if s.Remove(a.ID) {
		t.Fatalf("double remove succeeded")
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestNumberRange(t *testing.T) {
	e := LogEntry{RequestNumber: 4, ResponseNumber: 2}
	r := e.NumberRange()
	if r.Min != 2 || r.Max != 4 {
		t.Fatalf("range [%d,%d]", r.Min, r.Max)
	}
	if (LogEntry{}).NumberRange().Valid() {
		t.Fatalf("empty entry must have invalid range")
	}
	one := LogEntry{ResponseNumber: 7}.NumberRange()
	if one.Min != 7 || one.Max != 7 {
		t.Fatalf("single-number range [%d,%d]", one.Min, one.Max)
	}
}

func TestRangeOverlaps(t *testing.T) {
	a := Range{Min: 1, Max: 3}
	b := Range{Min: 3, Max: 5}
	c := Range{Min: 6, Max: 8}
	if !a.Overlaps(b) {
		t.Fatalf("touching ranges must overlap")
	}
	if a.Overlaps(c) {
		t.Fatalf("disjoint ranges must not overlap")
	}
	if (Range{}).Overlaps(a) || a.Overlaps(Range{}) {
		t.Fatalf("invalid ranges must not overlap")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewStore(10)
	s.Add(LogEntry{FirstColumn: "a"})
	snap, _, _ := s.Snapshot()
	snap[0].FirstColumn = "mutated"
	snap2, _, _ := s.Snapshot()
	if snap2[0].FirstColumn != "a" {
		t.Fatalf("snapshot aliases store memory")
	}
}
