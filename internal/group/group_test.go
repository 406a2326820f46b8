package group

import (
	"testing"

	"jseq/internal/model"
)

func ranged(seq, reqN, respN int) model.LogEntry {
	return model.LogEntry{Seq: seq, RequestNumber: reqN, ResponseNumber: respN}
}

func TestBuildOverlapMerge(t *testing.T) {
	// [1,3] and [2,4] cluster; [10,12] is separated by a rank gap and
	// stays apart.
	entries := []model.LogEntry{
		ranged(1, 1, 3),
		ranged(2, 2, 4),
		ranged(3, 10, 12),
	}
	groups := Build(entries)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].MinNumber != 1 || groups[0].MaxNumber != 4 {
		t.Fatalf("first group bounds [%d,%d], want [1,4]", groups[0].MinNumber, groups[0].MaxNumber)
	}
	if groups[1].MinNumber != 10 || groups[1].MaxNumber != 12 {
		t.Fatalf("second group bounds [%d,%d], want [10,12]", groups[1].MinNumber, groups[1].MaxNumber)
	}
}

func TestBuildAdjacentRanksShareGroup(t *testing.T) {
	// A request ranked 1 and a response ranked 2 are consecutive, so their
	// point ranges [1,1] and [2,2] belong to one group spanning [1,2].
	entries := []model.LogEntry{
		ranged(1, 1, 0),
		ranged(2, 0, 2),
	}
	groups := Build(entries)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].MinNumber != 1 || groups[0].MaxNumber != 2 {
		t.Fatalf("bounds [%d,%d], want [1,2]", groups[0].MinNumber, groups[0].MaxNumber)
	}
}

func TestBuildNoRangeSingleton(t *testing.T) {
	// An entry with no numbers is isolated, even when a wide group exists.
	entries := []model.LogEntry{
		ranged(1, 1, 9),
		{Seq: 2, FirstColumn: "no markers"},
		{Seq: 3, FirstColumn: "also bare"},
	}
	groups := Build(entries)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	// Boundless singletons sort last.
	if !groups[0].Bounds().Valid() {
		t.Fatalf("ranged group should sort first")
	}
	for _, g := range groups[1:] {
		if g.Bounds().Valid() || len(g.Entries) != 1 {
			t.Fatalf("expected boundless singleton, got %+v", g)
		}
	}
}

func TestBuildCoverage(t *testing.T) {
	entries := []model.LogEntry{
		ranged(1, 5, 6),
		ranged(2, 1, 2),
		ranged(3, 2, 5), // bridges the two once sorted by range.min
		{Seq: 4},
	}
	groups := Build(entries)
	count := 0
	for _, g := range groups {
		count += len(g.Entries)
		for _, e := range g.Entries {
			r := e.NumberRange()
			if r.Valid() && (r.Min < g.MinNumber || r.Max > g.MaxNumber) {
				t.Fatalf("member range [%d,%d] outside group bounds [%d,%d]",
					r.Min, r.Max, g.MinNumber, g.MaxNumber)
			}
		}
	}
	if count != len(entries) {
		t.Fatalf("entries across groups = %d, want %d", count, len(entries))
	}
}

func TestBuildChainedRangesWidenOneGroup(t *testing.T) {
	// Processing order after sorting by range.min: [1,2], [2,3], [3,4].
	// Each range touches the group founded by [1,2] and widens it, so the
	// chain collapses into a single group spanning [1,4]. Submission order
	// must not matter.
	entries := []model.LogEntry{
		ranged(1, 1, 2),
		ranged(2, 3, 4),
		ranged(3, 2, 3),
	}
	groups := Build(entries)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].MinNumber != 1 || groups[0].MaxNumber != 4 {
		t.Fatalf("group bounds [%d,%d], want [1,4]", groups[0].MinNumber, groups[0].MaxNumber)
	}
	if len(groups[0].Entries) != 3 {
		t.Fatalf("group members = %d, want 3", len(groups[0].Entries))
	}
}

func TestBuildRankGapSplitsGroups(t *testing.T) {
	// Adjacency bridges a difference of exactly one rank; a gap of two or
	// more does not.
	entries := []model.LogEntry{
		ranged(1, 1, 2),
		ranged(2, 4, 5),
	}
	groups := Build(entries)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].MaxNumber != 2 || groups[1].MinNumber != 4 {
		t.Fatalf("bounds [%d,%d] / [%d,%d], want [1,2] / [4,5]",
			groups[0].MinNumber, groups[0].MaxNumber, groups[1].MinNumber, groups[1].MaxNumber)
	}
}

func TestBuildMembersSortedByRangeMin(t *testing.T) {
	entries := []model.LogEntry{
		ranged(1, 3, 4),
		ranged(2, 1, 3),
		ranged(3, 2, 2),
	}
	groups := Build(entries)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	prev := 0
	for _, e := range groups[0].Entries {
		min := e.NumberRange().Min
		if min < prev {
			t.Fatalf("members not sorted by range.min")
		}
		prev = min
	}
}

func TestBuildEmpty(t *testing.T) {
	if groups := Build(nil); len(groups) != 0 {
		t.Fatalf("expected no groups")
	}
}
