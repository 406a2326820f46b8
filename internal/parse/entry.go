package parse

import (
	"errors"
	"strings"

	"jseq/internal/model"
)

// Marker phrases the journal emits when a request/response pair is written.
// Matching is a case-insensitive substring test per line.
const (
	MarkerRequest  = "request journal entry created"
	MarkerResponse = "response journal entry created"
)

// ErrEmptySubmission is returned for blank or whitespace-only input, which
// must never reach the entry collection.
var ErrEmptySubmission = errors.New("empty submission")

// ParseEntry splits a raw multi-line submission into an entry. The first
// non-blank line becomes the display label. Every line is checked
// independently for both markers; a marker line that also carries a valid
// timestamp sets the corresponding field. When several lines carry the
// same marker the last one wins (plain sequential scan).
//
// Identity fields (ID, Seq, CreatedAt) are left zero; the Store assigns
// them on insert.
func ParseEntry(raw string) (model.LogEntry, error) {
	e := model.LogEntry{Raw: raw}
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if e.FirstColumn == "" {
			e.FirstColumn = strings.TrimSpace(line)
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, MarkerRequest) {
			e.HasRequest = true
			if ts, ok := ParseTimestamp(line); ok {
				e.RequestTS = &ts
			}
		}
		if strings.Contains(lower, MarkerResponse) {
			e.HasResponse = true
			if ts, ok := ParseTimestamp(line); ok {
				e.ResponseTS = &ts
			}
		}
	}
	if e.FirstColumn == "" {
		return model.LogEntry{}, ErrEmptySubmission
	}
	return e, nil
}
