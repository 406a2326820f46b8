package filter

import (
	"testing"

	"jseq/internal/model"
)

func TestMatchSubstring(t *testing.T) {
	c := Criteria{Query: "getquote"}
	ev, err := NewEvaluator(c)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	e := model.LogEntry{Raw: "ORD-1 | GetQuote\nRequest journal entry created"}
	if !ev.Match(e, c) {
		t.Fatalf("case-insensitive substring should match")
	}
	if ev.Match(model.LogEntry{Raw: "other"}, c) {
		t.Fatalf("non-matching raw matched")
	}
}

func TestMatchRegex(t *testing.T) {
	c := Criteria{Query: `ORD-\d+`, UseRegex: true}
	ev, err := NewEvaluator(c)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !ev.Match(model.LogEntry{Raw: "ORD-42 something"}, c) {
		t.Fatalf("regex should match")
	}
}

func TestMatchExpression(t *testing.T) {
	c := Criteria{Expr: "request_number > 0 && has_response == false"}
	ev, err := NewEvaluator(c)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !ev.Match(model.LogEntry{RequestNumber: 3, HasRequest: true}, c) {
		t.Fatalf("expression should match request-only entry")
	}
	if ev.Match(model.LogEntry{RequestNumber: 3, HasResponse: true}, c) {
		t.Fatalf("expression matched entry with response")
	}
}

func TestBadInputs(t *testing.T) {
	if _, err := NewEvaluator(Criteria{Query: "([", UseRegex: true}); err == nil {
		t.Fatalf("bad regex accepted")
	}
	if _, err := NewEvaluator(Criteria{Expr: "&& nope"}); err == nil {
		t.Fatalf("bad expression accepted")
	}
}

func TestEmptyCriteriaMatchesAll(t *testing.T) {
	c := Criteria{}
	if !c.Empty() {
		t.Fatalf("zero criteria should be empty")
	}
	ev, _ := NewEvaluator(c)
	if !ev.Match(model.LogEntry{Raw: "anything"}, c) {
		t.Fatalf("empty criteria should match everything")
	}
}
