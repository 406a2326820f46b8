package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"jseq/internal/model"
)

const tsLayout = "2006-01-02T15:04:05.000Z07:00"

// ToCSV writes the sequenced entries, one row per entry with its derived
// numbers, in collection order.
func ToCSV(path string, entries []model.LogEntry) error {
	if len(entries) == 0 {
		return errors.New("no entries")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	header := []string{"id", "label", "has_request", "has_response", "request_ts", "response_ts", "request_number", "response_number", "raw"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.FirstColumn,
			strconv.FormatBool(e.HasRequest),
			strconv.FormatBool(e.HasResponse),
			fmtTS(e.RequestTS),
			fmtTS(e.ResponseTS),
			fmtNum(e.RequestNumber),
			fmtNum(e.ResponseNumber),
			e.Raw,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ToNDJSON writes one JSON object per entry.
func ToNDJSON(path string, entries []model.LogEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	defer bw.Flush()
	for _, e := range entries {
		b, _ := json.Marshal(e)
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// GroupsToCSV writes one row per group membership so the clustering can be
// inspected outside the TUI.
func GroupsToCSV(path string, groups []model.TableGroup) error {
	if len(groups) == 0 {
		return errors.New("no groups")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"group", "min_number", "max_number", "entry_id", "label"}); err != nil {
		return err
	}
	for gi, g := range groups {
		for _, e := range g.Entries {
			row := []string{
				strconv.Itoa(gi + 1),
				fmtNum(g.MinNumber),
				fmtNum(g.MaxNumber),
				e.ID,
				e.FirstColumn,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func fmtTS(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(tsLayout)
}

func fmtNum(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
