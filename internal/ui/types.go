package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jseq/internal/config"
	"jseq/internal/diagram"
	"jseq/internal/filter"
	"jseq/internal/ingest"
	"jseq/internal/model"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusDiagram
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalInspector
	modalExplain
	modalLogs
)

// entryRow maps a rendered body row to the entry shown there, for
// selection, inspection and deletion.
type entryRow struct {
	row int
	id  string
}

type Model struct {
	ctx context.Context
	cfg *config.Config

	// Source of truth
	store *model.Store

	// Optional non-interactive ingest
	snippets   <-chan ingest.Snippet
	ingestErrs <-chan error
	source     string

	// Pure derivations, rebuilt on every collection change
	sequenced  []model.LogEntry
	groups     []model.TableGroup
	bodyLines  []string
	labels     []diagram.Label
	entryRows  []entryRow
	connectors []diagram.Connector
	lanes      []int
	policy     diagram.Policy

	// The relayout generation counter implements the cancel-and-restart
	// discipline: a newer mutation or resize bumps it and stale relayout
	// ticks are dropped.
	layoutGen int

	total   uint64
	dropped uint64

	// UI
	focus       focusArea
	input       textarea.Model
	filterInput textinput.Model
	vp          viewport.Model
	spin        spinner.Model
	styles      Styles
	keymap      KeyMap
	sel         int // index into entryRows
	termWidth   int
	termHeight  int

	// Filter (display-only: dims non-matching entries)
	filterMode bool
	criteria   filter.Criteria
	eval       *filter.Evaluator

	// status
	lastMsg string
	netBusy bool

	// Modal popup
	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string
}

func keyLabel(k tea.Key) string {
	switch k.Type {
	case tea.KeyRunes:
		if len(k.Runes) == 1 && k.Runes[0] == ' ' {
			return "space"
		}
		return string(k.Runes)
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	case tea.KeyTab:
		return "tab"
	case tea.KeyCtrlS:
		return "ctrl+s"
	default:
		return strings.ToLower(k.String())
	}
}
