package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jseq/internal/config"
	"jseq/internal/diagram"
	"jseq/internal/model"
)

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		store:  model.NewStore(cfg.MaxEntries),
		focus:  focusInput,
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		keymap: DefaultKeyMap(),
		spin:   spinner.New(),
		source: "interactive",
	}
	m.policy, _ = diagram.ParsePolicy(cfg.Connectors)
	m.spin.Spinner = spinner.Dot

	m.input = textarea.New()
	m.input.Placeholder = "paste a journal snippet, ctrl+s to submit"
	m.input.SetHeight(inputHeight)
	m.input.CharLimit = 0
	m.input.Focus()

	m.filterInput = textinput.New()
	m.filterInput.Placeholder = "filter (text, /regex/, or expr: request_number > 0)"
	m.filterInput.CharLimit = 256
	m.filterInput.Prompt = "f> "

	m.vp = viewport.New(80, 20)
	m.recompute()
	return m
}

func Run(ctx context.Context, cfg *config.Config) error {
	m := initialModel(ctx, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		setupIngest(m),
		tea.Tick(ingestPollEvery, func(time.Time) tea.Msg { return tickMsg{} }),
	)
}

const (
	inputHeight     = 5
	ingestPollEvery = 200 * time.Millisecond
	layoutSettle    = 150 * time.Millisecond
)
