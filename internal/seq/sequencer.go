// Package seq computes the single global chronological ordering over all
// request and response events in the entry collection.
package seq

import (
	"sort"
	"time"

	"jseq/internal/model"
)

type event struct {
	entryIdx int
	kind     model.EventKind
	ts       time.Time
	ord      int // emission order: entry creation order, request before response
}

// Apply returns a copy of entries with RequestNumber/ResponseNumber
// recomputed from scratch. Ranks are dense 1..E over all events; ties on
// identical timestamps are broken by emission order, so the result is
// deterministic regardless of sort internals. Entries contributing no
// event get two zeros.
//
// The full recompute is deliberate: an entry with an earlier timestamp
// than everything seen so far must renumber every later event, so an
// incremental scheme buys nothing at this scale.
func Apply(entries []model.LogEntry) []model.LogEntry {
	out := make([]model.LogEntry, len(entries))
	copy(out, entries)

	events := make([]event, 0, 2*len(out))
	for i := range out {
		out[i].RequestNumber = 0
		out[i].ResponseNumber = 0
		if out[i].HasRequest && out[i].RequestTS != nil {
			events = append(events, event{entryIdx: i, kind: model.KindRequest, ts: *out[i].RequestTS, ord: len(events)})
		}
		if out[i].HasResponse && out[i].ResponseTS != nil {
			events = append(events, event{entryIdx: i, kind: model.KindResponse, ts: *out[i].ResponseTS, ord: len(events)})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].ts.Equal(events[j].ts) {
			return events[i].ts.Before(events[j].ts)
		}
		return events[i].ord < events[j].ord
	})

	for rank, ev := range events {
		switch ev.kind {
		case model.KindRequest:
			out[ev.entryIdx].RequestNumber = rank + 1
		case model.KindResponse:
			out[ev.entryIdx].ResponseNumber = rank + 1
		}
	}
	return out
}

// EventCount returns the number of events the collection contributes.
func EventCount(entries []model.LogEntry) int {
	n := 0
	for i := range entries {
		if entries[i].HasRequest && entries[i].RequestTS != nil {
			n++
		}
		if entries[i].HasResponse && entries[i].ResponseTS != nil {
			n++
		}
	}
	return n
}
