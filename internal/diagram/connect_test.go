package diagram

import (
	"testing"

	"jseq/internal/model"
)

func lbl(v int, k model.EventKind, row int) Label {
	return Label{Value: v, Kind: k, Row: row, Col: 0}
}

func TestResolveStrictConsecutive(t *testing.T) {
	labels := []Label{
		lbl(2, model.KindResponse, 1),
		lbl(1, model.KindRequest, 0),
		lbl(3, model.KindRequest, 4),
	}
	conns := Resolve(labels, PolicyStrict)
	if len(conns) != 2 {
		t.Fatalf("connectors = %d, want 2", len(conns))
	}
	if conns[0].From.Value != 1 || conns[0].To.Value != 2 {
		t.Fatalf("first connector %d->%d", conns[0].From.Value, conns[0].To.Value)
	}
	if conns[0].Class != ClassMixed {
		t.Fatalf("1->2 class = %v, want mixed", conns[0].Class)
	}
}

func TestResolveStrictSkipsGaps(t *testing.T) {
	labels := []Label{
		lbl(1, model.KindRequest, 0),
		lbl(2, model.KindRequest, 1),
		lbl(5, model.KindResponse, 2),
	}
	conns := Resolve(labels, PolicyStrict)
	if len(conns) != 1 {
		t.Fatalf("connectors = %d, want 1 (2->5 gap must be skipped)", len(conns))
	}
	if conns[0].Class != ClassRequest {
		t.Fatalf("1->2 class = %v, want request", conns[0].Class)
	}
}

func TestResolveAllBridgesGaps(t *testing.T) {
	labels := []Label{
		lbl(1, model.KindRequest, 0),
		lbl(5, model.KindResponse, 2),
		lbl(9, model.KindResponse, 3),
	}
	conns := Resolve(labels, PolicyAll)
	if len(conns) != 2 {
		t.Fatalf("connectors = %d, want 2", len(conns))
	}
	if conns[1].Class != ClassResponse {
		t.Fatalf("5->9 class = %v, want response", conns[1].Class)
	}
}

func TestResolveFewLabels(t *testing.T) {
	if conns := Resolve(nil, PolicyStrict); conns != nil {
		t.Fatalf("nil labels should yield no connectors")
	}
	if conns := Resolve([]Label{lbl(1, model.KindRequest, 0)}, PolicyAll); conns != nil {
		t.Fatalf("single label should yield no connectors")
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	labels := []Label{
		lbl(3, model.KindRequest, 2),
		lbl(1, model.KindRequest, 0),
	}
	_ = Resolve(labels, PolicyAll)
	if labels[0].Value != 3 {
		t.Fatalf("input slice reordered")
	}
}

func TestParsePolicy(t *testing.T) {
	if p, ok := ParsePolicy("strict"); !ok || p != PolicyStrict {
		t.Fatalf("strict: %v %v", p, ok)
	}
	if p, ok := ParsePolicy("all"); !ok || p != PolicyAll {
		t.Fatalf("all: %v %v", p, ok)
	}
	if _, ok := ParsePolicy("sometimes"); ok {
		t.Fatalf("bogus policy accepted")
	}
}

func TestAssignLanesOverlap(t *testing.T) {
	conns := []Connector{
		{From: lbl(1, model.KindRequest, 0), To: lbl(2, model.KindRequest, 4)},
		{From: lbl(2, model.KindRequest, 4), To: lbl(3, model.KindRequest, 2)}, // overlaps rows 2-4
		{From: lbl(3, model.KindRequest, 2), To: lbl(4, model.KindRequest, 6)}, // overlaps both? rows 2-6
		{From: lbl(5, model.KindRequest, 8), To: lbl(6, model.KindRequest, 9)}, // clear of lane 0
	}
	lanes := AssignLanes(conns)
	if lanes[0] != 0 {
		t.Fatalf("first connector lane = %d", lanes[0])
	}
	if lanes[1] == lanes[0] {
		t.Fatalf("overlapping connectors share lane %d", lanes[1])
	}
	if lanes[3] != 0 {
		t.Fatalf("disjoint connector should reuse lane 0, got %d", lanes[3])
	}
}

func TestAssignLanesEmpty(t *testing.T) {
	if lanes := AssignLanes(nil); len(lanes) != 0 {
		t.Fatalf("expected no lanes")
	}
}
