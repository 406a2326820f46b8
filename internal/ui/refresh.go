package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jseq/internal/diagram"
	"jseq/internal/group"
	"jseq/internal/model"
	"jseq/internal/seq"
	"jseq/internal/util/logx"
)

const (
	tsDisplay = "1/2/2006 3:04:05.000 PM"
	labelW    = 28
)

// recompute rebuilds every derivation from the entry collection: global
// sequence, groups, and the rendered body. Connectors are resolved later,
// once layout has settled (see scheduleRelayout).
func (m *Model) recompute() {
	entries, total, dropped := m.store.Snapshot()
	if dropped > m.dropped {
		logx.Warnf("collection over cap: dropped %d oldest entries (cap=%d)", dropped-m.dropped, m.store.Cap())
	}
	m.total, m.dropped = total, dropped
	m.sequenced = seq.Apply(entries)
	m.groups = group.Build(m.sequenced)
	m.renderBody()
	// Stale until the next relayout lands.
	m.connectors = nil
	m.lanes = nil
	m.refreshViewport()
}

type span struct {
	start, end int
	style      lipgloss.Style
}

// renderBody lays out the groups into body lines and records the position
// of every rendered number label plus the row of every entry.
func (m *Model) renderBody() {
	m.bodyLines = m.bodyLines[:0]
	m.labels = m.labels[:0]
	m.entryRows = m.entryRows[:0]

	for gi, g := range m.groups {
		header := fmt.Sprintf("Group %d", gi+1)
		if g.Bounds().Valid() {
			header += fmt.Sprintf("  ranks %d-%d", g.MinNumber, g.MaxNumber)
		} else {
			header += "  unranked"
		}
		m.bodyLines = append(m.bodyLines, m.styles.GroupHeader.Render(header))

		for _, e := range g.Entries {
			row := len(m.bodyLines)
			m.entryRows = append(m.entryRows, entryRow{row: row, id: e.ID})
			m.bodyLines = append(m.bodyLines, m.renderEntryLine(e, row))
		}
		m.bodyLines = append(m.bodyLines, "")
	}
	if m.sel >= len(m.entryRows) {
		m.sel = len(m.entryRows) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

func (m *Model) renderEntryLine(e model.LogEntry, row int) string {
	var plain strings.Builder
	var spans []span
	width := 0
	add := func(s string, st *lipgloss.Style) {
		if st != nil {
			spans = append(spans, span{start: width, end: width + len([]rune(s)), style: *st})
		}
		plain.WriteString(s)
		width += len([]rune(s))
	}

	add("  "+padRight(truncateRunes(e.FirstColumn, labelW), labelW)+"  ", nil)

	addSide := func(tag string, kind model.EventKind, has bool, number int, ts fmt.Stringer) {
		add(tag+" ", nil)
		switch {
		case number > 0:
			col := width
			numStyle := m.styles.ReqNumber
			if kind == model.KindResponse {
				numStyle = m.styles.RespNumber
			}
			add(fmt.Sprintf("#%d", number), &numStyle)
			m.labels = append(m.labels, diagram.Label{Value: number, Kind: kind, Row: row, Col: col})
			add(" "+ts.String(), nil)
		case has:
			// Marker matched but the timestamp did not parse: no rank,
			// nothing to connect on this side.
			add("#? bad timestamp", &m.styles.NoEvent)
		default:
			add("-", &m.styles.NoEvent)
		}
	}

	addSide("req", model.KindRequest, e.HasRequest, e.RequestNumber, tsOrEmpty{e, model.KindRequest})
	add("   ", nil)
	addSide("rsp", model.KindResponse, e.HasResponse, e.ResponseNumber, tsOrEmpty{e, model.KindResponse})

	text := plain.String()
	if m.isSelected(row) && m.focus == focusDiagram {
		return m.styles.Selected.Render(text)
	}
	if !m.matchesFilter(e) {
		return m.styles.Dimmed.Render(text)
	}
	return styleSpans(text, spans)
}

// tsOrEmpty defers timestamp formatting so renderEntryLine can pass a
// single argument per side.
type tsOrEmpty struct {
	e    model.LogEntry
	kind model.EventKind
}

func (t tsOrEmpty) String() string {
	var ts = t.e.RequestTS
	if t.kind == model.KindResponse {
		ts = t.e.ResponseTS
	}
	if ts == nil {
		return ""
	}
	return ts.Format(tsDisplay)
}

func styleSpans(s string, spans []span) string {
	if len(spans) == 0 {
		return s
	}
	r := []rune(s)
	var b strings.Builder
	pos := 0
	for _, sp := range spans {
		if sp.start > pos {
			b.WriteString(string(r[pos:sp.start]))
		}
		end := sp.end
		if end > len(r) {
			end = len(r)
		}
		b.WriteString(sp.style.Render(string(r[sp.start:end])))
		pos = end
	}
	if pos < len(r) {
		b.WriteString(string(r[pos:]))
	}
	return b.String()
}

func (m *Model) isSelected(row int) bool {
	return m.sel >= 0 && m.sel < len(m.entryRows) && m.entryRows[m.sel].row == row
}

func (m *Model) matchesFilter(e model.LogEntry) bool {
	if m.eval == nil || m.criteria.Empty() {
		return true
	}
	return m.eval.Match(e, m.criteria)
}

// relayout resolves connectors against the current label positions. Runs
// only via relayoutMsg after the settle delay; data recomputation never
// happens here.
func (m *Model) relayout() {
	m.connectors = diagram.Resolve(m.labels, m.policy)
	m.lanes = diagram.AssignLanes(m.connectors)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	lines := make([]string, len(m.bodyLines))
	copy(lines, m.bodyLines)
	if len(m.connectors) > 0 {
		lines = m.spliceRail(lines)
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.ensureSelVisible()
}

// spliceRail draws the connector rail to the right of the body: one column
// per lane, box-drawing runes, styled per connector class.
func (m *Model) spliceRail(lines []string) []string {
	maxLane := 0
	for _, l := range m.lanes {
		if l > maxLane {
			maxLane = l
		}
	}
	type cell struct {
		glyph rune
		class diagram.Class
	}
	grid := make([]map[int]cell, len(lines))
	for i, c := range m.connectors {
		lo, hi := c.From.Row, c.To.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi >= len(lines) {
			continue
		}
		lane := m.lanes[i]
		put := func(row int, g rune) {
			if grid[row] == nil {
				grid[row] = map[int]cell{}
			}
			grid[row][lane] = cell{glyph: g, class: c.Class}
		}
		if lo == hi {
			put(lo, '─')
			continue
		}
		put(lo, '╮')
		for r := lo + 1; r < hi; r++ {
			put(r, '│')
		}
		put(hi, '╯')
	}

	maxw := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > maxw {
			maxw = w
		}
	}
	out := make([]string, len(lines))
	for row, l := range lines {
		if grid[row] == nil {
			out[row] = l
			continue
		}
		var rail strings.Builder
		for lane := 0; lane <= maxLane; lane++ {
			if c, ok := grid[row][lane]; ok {
				rail.WriteString(m.styles.Connector[c.class].Render(string(c.glyph)))
			} else {
				rail.WriteByte(' ')
			}
		}
		pad := maxw - lipgloss.Width(l) + 1
		out[row] = l + strings.Repeat(" ", pad) + rail.String()
	}
	return out
}

func (m *Model) ensureSelVisible() {
	if m.sel < 0 || m.sel >= len(m.entryRows) {
		return
	}
	row := m.entryRows[m.sel].row
	if row < m.vp.YOffset {
		m.vp.YOffset = row
	} else if row >= m.vp.YOffset+m.vp.Height {
		m.vp.YOffset = row - m.vp.Height + 1
	}
}

func padRight(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r)
	}
	return s + strings.Repeat(" ", w-len(r))
}

func truncateRunes(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
