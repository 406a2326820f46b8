// Package diagram turns rendered number labels into connector segments for
// the presentation layer. It runs after layout has settled, so labels
// arrive with their final row/column positions.
package diagram

import (
	"sort"

	"jseq/internal/model"
)

// Label is one rendered rank marker: its integer value, the event kind it
// belongs to, and its position in the rendered body (row = line index,
// Col = rune offset of the number text).
type Label struct {
	Value int
	Kind  model.EventKind
	Row   int
	Col   int
}

type Class int

const (
	ClassRequest Class = iota // both endpoints are request ranks
	ClassResponse
	ClassMixed
)

// Policy selects which consecutive label pairs get a connector. The two
// observed target behaviors diverge here, so the choice is explicit and
// never blended.
type Policy int

const (
	// PolicyStrict connects only pairs whose values differ by exactly 1.
	// Default: a gap means a rank was not rendered, and drawing across it
	// would fabricate adjacency.
	PolicyStrict Policy = iota
	// PolicyAll connects every adjacent pair of the value-sorted sequence
	// regardless of numeric gap.
	PolicyAll
)

func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "strict", "":
		return PolicyStrict, true
	case "all":
		return PolicyAll, true
	}
	return PolicyStrict, false
}

func (p Policy) String() string {
	if p == PolicyAll {
		return "all"
	}
	return "strict"
}

// Connector links two labels. Class is part of the core contract; how a
// class is styled is the renderer's business.
type Connector struct {
	From, To Label
	Class    Class
}

// Resolve sorts labels ascending by value and emits one connector per
// consecutive pair admitted by the policy. Duplicate values never occur
// when the sequencer did its job; if they do, both pairs are emitted and
// the defect shows up visually rather than being masked.
func Resolve(labels []Label, p Policy) []Connector {
	if len(labels) < 2 {
		return nil
	}
	sorted := make([]Label, len(labels))
	copy(sorted, labels)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	conns := make([]Connector, 0, len(sorted)-1)
	for i := 0; i+1 < len(sorted); i++ {
		a, b := sorted[i], sorted[i+1]
		if p == PolicyStrict && b.Value-a.Value != 1 {
			continue
		}
		conns = append(conns, Connector{From: a, To: b, Class: classify(a.Kind, b.Kind)})
	}
	return conns
}

func classify(a, b model.EventKind) Class {
	if a != b {
		return ClassMixed
	}
	if a == model.KindRequest {
		return ClassRequest
	}
	return ClassResponse
}

// AssignLanes places connectors into drawing lanes so that segments whose
// row spans overlap never share a lane. First-fit over lanes in index
// order; the returned slice parallels conns.
func AssignLanes(conns []Connector) []int {
	lanes := make([]int, len(conns))
	type span struct{ lo, hi int }
	var occupied [][]span
	for i, c := range conns {
		lo, hi := c.From.Row, c.To.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		placed := false
		for li := range occupied {
			free := true
			for _, s := range occupied[li] {
				if !(hi < s.lo || lo > s.hi) {
					free = false
					break
				}
			}
			if free {
				occupied[li] = append(occupied[li], span{lo, hi})
				lanes[i] = li
				placed = true
				break
			}
		}
		if !placed {
			occupied = append(occupied, []span{{lo, hi}})
			lanes[i] = len(occupied) - 1
		}
	}
	return lanes
}
