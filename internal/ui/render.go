package ui

import (
	"fmt"
	"strings"

	"jseq/internal/seq"
)

func (m *Model) View() string {
	if m.termWidth == 0 {
		return "starting..."
	}
	main := m.renderMain()
	if m.modalActive {
		return m.overlay(main)
	}
	return main
}

func (m *Model) renderMain() string {
	var b strings.Builder

	inputTitle := "input"
	diagTitle := "diagram"
	if m.focus == focusInput {
		inputTitle = "input *"
	} else {
		diagTitle = "diagram *"
	}

	b.WriteString(m.styles.GroupHeader.Render(inputTitle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.GroupHeader.Render(diagTitle))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")

	if m.filterMode {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	} else if !m.criteria.Empty() {
		b.WriteString(m.styles.Help.Render("filter: " + m.filterDesc() + "  (F to clear)"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	return b.String()
}

func (m *Model) filterDesc() string {
	if m.criteria.Expr != "" {
		return "expr: " + m.criteria.Expr
	}
	if m.criteria.UseRegex {
		return "/" + m.criteria.Query + "/"
	}
	return m.criteria.Query
}

func (m *Model) statusLine() string {
	events := seq.EventCount(m.sequenced)
	parts := []string{
		fmt.Sprintf("entries %d/%d", len(m.sequenced), m.store.Cap()),
		fmt.Sprintf("events %d", events),
		fmt.Sprintf("groups %d", len(m.groups)),
		"connectors " + m.policy.String(),
		"src " + m.source,
	}
	if m.dropped > 0 {
		parts = append(parts, fmt.Sprintf("dropped %d", m.dropped))
	}
	line := strings.Join(parts, " | ")
	if m.netBusy {
		line = m.spin.View() + " " + line
	}
	if m.lastMsg != "" {
		line += "  " + m.lastMsg
	}
	line += "  (? help)"
	if m.termWidth > 0 {
		line = truncateRunes(line, m.termWidth)
	}
	return m.styles.Status.Render(line)
}

// Modal helpers

func (m *Model) openModal(kind modalKind, title, body string) {
	m.modalActive = true
	m.modalKind = kind
	m.modalTitle = title
	m.modalBody = body
	m.resizeModal()
}

func (m *Model) closeModal() {
	m.modalActive = false
	m.modalKind = modalNone
	m.modalBody = ""
}

func (m *Model) resizeModal() {
	w := m.termWidth - 10
	h := m.termHeight - 8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.modalVP.Width = w
	m.modalVP.Height = h
	m.modalVP.SetContent(m.modalBody)
	m.modalVP.GotoTop()
}

func (m *Model) openHelp() {
	items := []struct{ key, text string }{
		{keyLabel(m.keymap.Submit), "submit the snippet in the input box"},
		{keyLabel(m.keymap.FocusSwitch), "switch focus between input and diagram"},
		{"up/down j/k", "move selection (diagram focus)"},
		{keyLabel(m.keymap.Top) + "/" + keyLabel(m.keymap.Bottom), "jump to top / bottom"},
		{keyLabel(m.keymap.Inspect), "inspect the selected entry"},
		{keyLabel(m.keymap.Delete), "delete the selected entry"},
		{keyLabel(m.keymap.ClearAll), "clear all entries"},
		{keyLabel(m.keymap.Filter), "filter (text, /regex/, or expr: ...)"},
		{keyLabel(m.keymap.ClearFilter), "clear the filter"},
		{keyLabel(m.keymap.Export), "export (per --export/--out flags)"},
		{keyLabel(m.keymap.Explain), "explain the timeline with OpenAI"},
		{keyLabel(m.keymap.CopyEntry), "copy the selected entry's raw text"},
		{keyLabel(m.keymap.AppLogs), "show application logs"},
		{keyLabel(m.keymap.Quit), "quit"},
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", it.key, it.text))
	}
	m.openModal(modalHelp, "Help", b.String())
}
