package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"jseq/internal/export"
	"jseq/internal/filter"
	"jseq/internal/model"
	"jseq/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.SetWidth(msg.Width - 2)
		m.filterInput.Width = msg.Width - 6
		m.vp.Width = msg.Width
		// title + input + title + filter/status lines
		h := msg.Height - inputHeight - 5
		if h < 3 {
			h = 3
		}
		m.vp.Height = h
		if m.modalActive {
			m.resizeModal()
		}
		// Resize re-renders and relayouts; it never reruns the sequencer.
		m.renderBody()
		m.refreshViewport()
		return m, m.scheduleRelayout()

	case tickMsg:
		var cmds []tea.Cmd
		if added := m.drainSnippets(); added > 0 {
			m.recompute()
			m.lastMsg = fmt.Sprintf("ingested %d entries", added)
			cmds = append(cmds, m.scheduleRelayout())
		}
		cmds = append(cmds, tea.Tick(ingestPollEvery, func(time.Time) tea.Msg { return tickMsg{} }))
		return m, tea.Batch(cmds...)

	case relayoutMsg:
		// Stale generations were superseded by a newer mutation or resize.
		if msg.gen == m.layoutGen {
			m.relayout()
		}
		return m, nil

	case explainStartMsg:
		m.netBusy = true
		m.openModal(modalExplain, "Explain", "contacting model...")
		return m, m.spin.Tick

	case explainDoneMsg:
		m.netBusy = false
		if m.modalActive && m.modalKind == modalExplain {
			if msg.ok {
				m.modalBody = msg.text
			} else {
				m.modalBody = "error: " + msg.err
			}
			m.resizeModal()
		}
		return m, nil

	case toastMsg:
		m.lastMsg = msg.text
		return m, nil

	case spinner.TickMsg:
		if !m.netBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.modalActive {
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			m.closeModal()
			return m, nil
		}
		var cmd tea.Cmd
		m.modalVP, cmd = m.modalVP.Update(msg)
		return m, cmd
	}

	if m.filterMode {
		switch msg.Type {
		case tea.KeyEsc:
			m.filterMode = false
			m.filterInput.Blur()
			return m, nil
		case tea.KeyEnter:
			m.filterMode = false
			m.filterInput.Blur()
			m.applyFilter(m.filterInput.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	if keyMatches(msg, m.keymap.FocusSwitch) {
		if m.focus == focusInput {
			m.focus = focusDiagram
			m.input.Blur()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		m.renderBody()
		m.refreshViewport()
		return m, nil
	}

	if keyMatches(msg, m.keymap.Submit) {
		if m.submit(m.input.Value()) {
			m.input.Reset()
			m.recompute()
			m.lastMsg = "entry added"
			return m, m.scheduleRelayout()
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m.handleDiagramKey(msg)
}

func (m *Model) handleDiagramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "up" || msg.String() == "k":
		m.moveSel(-1)
		return m, nil
	case msg.String() == "down" || msg.String() == "j":
		m.moveSel(1)
		return m, nil
	case keyMatches(msg, m.keymap.Top):
		m.setSel(0)
		return m, nil
	case keyMatches(msg, m.keymap.Bottom):
		m.setSel(len(m.entryRows) - 1)
		return m, nil

	case keyMatches(msg, m.keymap.Inspect):
		if e, ok := m.selectedEntry(); ok {
			m.openModal(modalInspector, "Entry "+e.ID, e.PrettyJSON())
		}
		return m, nil

	case keyMatches(msg, m.keymap.Delete):
		if e, ok := m.selectedEntry(); ok {
			m.store.Remove(e.ID)
			m.recompute()
			m.lastMsg = "entry deleted"
			return m, m.scheduleRelayout()
		}
		return m, nil

	case keyMatches(msg, m.keymap.ClearAll):
		m.store.Clear()
		m.recompute()
		m.sel = 0
		m.lastMsg = "cleared"
		return m, m.scheduleRelayout()

	case keyMatches(msg, m.keymap.Filter):
		m.filterMode = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, nil

	case keyMatches(msg, m.keymap.ClearFilter):
		m.criteria = filter.Criteria{}
		m.eval = nil
		m.renderBody()
		m.refreshViewport()
		return m, nil

	case keyMatches(msg, m.keymap.Export):
		m.doExport()
		return m, nil

	case keyMatches(msg, m.keymap.Explain):
		return m, m.triggerExplain()

	case keyMatches(msg, m.keymap.CopyEntry):
		if e, ok := m.selectedEntry(); ok {
			copyToClipboard(e.Raw)
			m.lastMsg = "copied raw entry"
		}
		return m, nil

	case keyMatches(msg, m.keymap.AppLogs):
		body := logx.Dump()
		if body == "" {
			body = "(no log lines)"
		}
		m.openModal(modalLogs, "Application logs", body)
		return m, nil

	case keyMatches(msg, m.keymap.Help):
		m.openHelp()
		return m, nil

	case keyMatches(msg, m.keymap.Quit):
		return m, tea.Quit
	}

	// Everything else scrolls the viewport (pgup/pgdn, mouse wheel keys).
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *Model) moveSel(delta int) { m.setSel(m.sel + delta) }

func (m *Model) setSel(i int) {
	if len(m.entryRows) == 0 {
		m.sel = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.entryRows) {
		i = len(m.entryRows) - 1
	}
	m.sel = i
	m.renderBody()
	m.refreshViewport()
}

func (m *Model) selectedEntry() (model.LogEntry, bool) {
	if m.sel < 0 || m.sel >= len(m.entryRows) {
		return model.LogEntry{}, false
	}
	id := m.entryRows[m.sel].id
	for _, e := range m.sequenced {
		if e.ID == id {
			return e, true
		}
	}
	return model.LogEntry{}, false
}

// applyFilter interprets the filter box: "expr:" prefix selects a govaluate
// expression, /slashes/ a regex, anything else a case-insensitive substring.
func (m *Model) applyFilter(raw string) {
	raw = strings.TrimSpace(raw)
	c := filter.Criteria{}
	switch {
	case raw == "":
	case strings.HasPrefix(raw, "expr:"):
		c.Expr = strings.TrimSpace(strings.TrimPrefix(raw, "expr:"))
	case len(raw) > 1 && strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/"):
		c.Query = strings.Trim(raw, "/")
		c.UseRegex = true
	default:
		c.Query = raw
	}
	ev, err := filter.NewEvaluator(c)
	if err != nil {
		m.lastMsg = "bad filter: " + err.Error()
		return
	}
	m.criteria = c
	m.eval = ev
	m.renderBody()
	m.refreshViewport()
}

func (m *Model) doExport() {
	if m.cfg.ExportFormat == "" || m.cfg.ExportOut == "" {
		m.lastMsg = "export not configured (run with --export and --out)"
		return
	}
	var err error
	switch m.cfg.ExportFormat {
	case "csv":
		err = export.ToCSV(m.cfg.ExportOut, m.sequenced)
	case "json":
		err = export.ToNDJSON(m.cfg.ExportOut, m.sequenced)
	case "groups":
		err = export.GroupsToCSV(m.cfg.ExportOut, m.groups)
	}
	if err != nil {
		logx.Errorf("export: %v", err)
		m.lastMsg = "export failed: " + err.Error()
		return
	}
	m.lastMsg = "exported " + m.cfg.ExportFormat + " to " + m.cfg.ExportOut
}
