// Package group partitions sequenced entries into display groups whose
// number ranges are transitively connected: overlapping or numerically
// adjacent.
package group

import (
	"sort"

	"jseq/internal/model"
)

// Build clusters sequenced entries by first-fit over their number ranges.
//
// Ranged entries are sorted ascending by range min and each joins the
// first group whose current bounds it overlaps or abuts, widening those
// bounds; otherwise it founds a new group. Consecutive ranks count as
// connected: an entry holding rank 1 and an entry holding rank 2 share a
// group even though [1,1] and [2,2] do not strictly intersect. With the
// pre-sort this chains every run of consecutive or overlapping ranks into
// one group; only a gap of two or more ranks starts a new one.
//
// Entries without any number are processed last and each founds its own
// singleton group; they are never merged with anything.
func Build(entries []model.LogEntry) []model.TableGroup {
	ranged := make([]model.LogEntry, 0, len(entries))
	unranged := make([]model.LogEntry, 0)
	for _, e := range entries {
		if e.NumberRange().Valid() {
			ranged = append(ranged, e)
		} else {
			unranged = append(unranged, e)
		}
	}
	sort.SliceStable(ranged, func(i, j int) bool {
		return ranged[i].NumberRange().Min < ranged[j].NumberRange().Min
	})

	var groups []model.TableGroup
	for _, e := range ranged {
		r := e.NumberRange()
		placed := false
		for gi := range groups {
			if connected(r, groups[gi].Bounds()) {
				groups[gi].Entries = append(groups[gi].Entries, e)
				if r.Min < groups[gi].MinNumber {
					groups[gi].MinNumber = r.Min
				}
				if r.Max > groups[gi].MaxNumber {
					groups[gi].MaxNumber = r.Max
				}
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, model.TableGroup{
				Entries:   []model.LogEntry{e},
				MinNumber: r.Min,
				MaxNumber: r.Max,
			})
		}
	}
	for _, e := range unranged {
		groups = append(groups, model.TableGroup{Entries: []model.LogEntry{e}})
	}

	for gi := range groups {
		members := groups[gi].Entries
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].NumberRange().Min < members[j].NumberRange().Min
		})
	}
	// Groups ascending by lower bound; the boundless singletons sort last
	// in their creation (= entry) order.
	sort.SliceStable(groups, func(i, j int) bool {
		bi, bj := groups[i].Bounds(), groups[j].Bounds()
		if bi.Valid() != bj.Valid() {
			return bi.Valid()
		}
		return bi.Min < bj.Min
	})
	return groups
}

// connected reports whether a range belongs with existing bounds: a strict
// intersection or numeric adjacency on either side.
func connected(r, b model.Range) bool {
	if !r.Valid() || !b.Valid() {
		return false
	}
	return r.Max >= b.Min-1 && r.Min <= b.Max+1
}
