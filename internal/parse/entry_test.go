package parse

import (
	"errors"
	"testing"
)

func TestParseEntryRequestAndResponse(t *testing.T) {
	raw := "ORD-1001 | GetQuote\n" +
		"Request journal entry created: 1/1/2025 1:00:00.000 AM\n" +
		"Response journal entry created: 1/1/2025 1:00:01.250 AM\n"
	e, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e.FirstColumn != "ORD-1001 | GetQuote" {
		t.Fatalf("firstColumn: %q", e.FirstColumn)
	}
	if !e.HasRequest || !e.HasResponse {
		t.Fatalf("markers: req=%v resp=%v", e.HasRequest, e.HasResponse)
	}
	if e.RequestTS == nil || e.ResponseTS == nil {
		t.Fatalf("timestamps missing")
	}
	if !e.RequestTS.Before(*e.ResponseTS) {
		t.Fatalf("expected request before response")
	}
}

func TestParseEntryMarkerCaseInsensitive(t *testing.T) {
	e, err := ParseEntry("label\nREQUEST JOURNAL ENTRY CREATED: 1/1/2025 2:00:00.000 AM")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !e.HasRequest || e.RequestTS == nil {
		t.Fatalf("uppercase marker not detected")
	}
}

func TestParseEntryMarkerWithoutTimestamp(t *testing.T) {
	// Marker present, timestamp malformed: flag set, field absent.
	e, err := ParseEntry("label\nresponse journal entry created: yesterday-ish")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !e.HasResponse {
		t.Fatalf("marker flag not set")
	}
	if e.ResponseTS != nil {
		t.Fatalf("timestamp should be absent")
	}
}

func TestParseEntryNoMarkers(t *testing.T) {
	e, err := ParseEntry("just a note\nwith a second line")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e.HasRequest || e.HasResponse || e.RequestTS != nil || e.ResponseTS != nil {
		t.Fatalf("unexpected marker state: %+v", e)
	}
}

func TestParseEntryLastMarkerWins(t *testing.T) {
	raw := "label\n" +
		"request journal entry created: 1/1/2025 1:00:00.000 AM\n" +
		"request journal entry created: 1/1/2025 2:00:00.000 AM\n"
	e, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e.RequestTS == nil || e.RequestTS.Hour() != 2 {
		t.Fatalf("expected last marker line to win, got %v", e.RequestTS)
	}
}

func TestParseEntryBlankRejected(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n", " \t \n  \n"} {
		if _, err := ParseEntry(raw); !errors.Is(err, ErrEmptySubmission) {
			t.Fatalf("%q: expected ErrEmptySubmission, got %v", raw, err)
		}
	}
}

func TestParseEntrySkipsBlankLinesForLabel(t *testing.T) {
	e, err := ParseEntry("\n\n  actual label  \nmore text")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if e.FirstColumn != "actual label" {
		t.Fatalf("firstColumn: %q", e.FirstColumn)
	}
}
