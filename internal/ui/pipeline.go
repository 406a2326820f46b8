package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jseq/internal/ai"
	"jseq/internal/ingest"
	"jseq/internal/parse"
	"jseq/internal/util/logx"
)

type tickMsg struct{}
type relayoutMsg struct{ gen int }
type explainStartMsg struct{}
type explainDoneMsg struct {
	ok   bool
	text string
	err  string
}
type toastMsg struct{ text string }

// setupIngest wires the optional stdin/file source. Interactive-only
// sessions skip it entirely.
func setupIngest(m *Model) tea.Cmd {
	var src ingest.SourceKind
	switch {
	case m.cfg.UseStdin:
		src = ingest.SourceStdin
		m.source = "stdin"
	case m.cfg.FilePath != "":
		src = ingest.SourceFile
		m.source = m.cfg.FilePath
	default:
		return nil
	}
	m.snippets, m.ingestErrs = ingest.Read(m.ctx, ingest.Options{
		Source:      src,
		Path:        m.cfg.FilePath,
		Follow:      m.cfg.Follow,
		ScanBufSize: 1024 * 1024,
	})
	logx.Infof("ingest: source=%s follow=%v", m.source, m.cfg.Follow)
	return nil
}

// submit parses a snippet and adds it to the collection. Blank input is
// rejected before the store is touched.
func (m *Model) submit(text string) bool {
	e, err := parse.ParseEntry(text)
	if err != nil {
		if errors.Is(err, parse.ErrEmptySubmission) {
			m.lastMsg = "empty submission ignored"
		} else {
			m.lastMsg = "submission rejected: " + err.Error()
		}
		return false
	}
	m.store.Add(e)
	return true
}

// drainSnippets pulls queued ingest snippets without blocking. Returns how
// many entries were added; the caller recomputes once for the batch.
func (m *Model) drainSnippets() int {
	if m.snippets == nil {
		return 0
	}
	added := 0
	for i := 0; i < 100; i++ {
		select {
		case s, ok := <-m.snippets:
			if !ok {
				m.snippets = nil
				return added
			}
			if m.submit(s.Text) {
				added++
			}
		case err := <-m.ingestErrs:
			if err != nil {
				logx.Errorf("ingest: %v", err)
				m.lastMsg = "ingest error: " + err.Error()
			}
		default:
			return added
		}
	}
	return added
}

// scheduleRelayout defers connector resolution until layout settles. Any
// newer call supersedes pending ones via the generation counter.
func (m *Model) scheduleRelayout() tea.Cmd {
	m.layoutGen++
	gen := m.layoutGen
	return tea.Tick(layoutSettle, func(time.Time) tea.Msg { return relayoutMsg{gen: gen} })
}

func (m *Model) triggerExplain() tea.Cmd {
	if m.cfg.Offline || m.cfg.OpenAIKey() == "" {
		return func() tea.Msg { return toastMsg{text: "explain unavailable (offline or no OPENAI_API_KEY)"} }
	}
	if len(m.sequenced) == 0 {
		return func() tea.Msg { return toastMsg{text: "nothing to explain yet"} }
	}
	client := ai.NewOpenAIClient(m.cfg.OpenAIKey(), m.cfg.OpenAIBase, m.cfg.OpenAIModel,
		time.Duration(m.cfg.OpenAITimeoutSec)*time.Second)
	entries := m.sequenced
	groups := m.groups
	return tea.Batch(
		func() tea.Msg { return explainStartMsg{} },
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(m.ctx, time.Duration(m.cfg.OpenAITimeoutSec)*time.Second)
			defer cancel()
			text, err := client.Explain(ctx, entries, groups)
			if err != nil {
				return explainDoneMsg{ok: false, err: err.Error()}
			}
			return explainDoneMsg{ok: true, text: text}
		},
	)
}
