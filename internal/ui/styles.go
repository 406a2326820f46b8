package ui

import (
	"github.com/charmbracelet/lipgloss"

	"jseq/internal/diagram"
)

type Styles struct {
	Base        lipgloss.Style
	Status      lipgloss.Style
	GroupHeader lipgloss.Style
	Label       lipgloss.Style
	ReqNumber   lipgloss.Style
	RespNumber  lipgloss.Style
	NoEvent     lipgloss.Style
	Selected    lipgloss.Style
	Dimmed      lipgloss.Style
	Help        lipgloss.Style
	PopupBox    lipgloss.Style
	PopupTitle  lipgloss.Style
	Connector   map[diagram.Class]lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.GroupHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.ReqNumber = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
		s.RespNumber = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
		s.NoEvent = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
		s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.Dimmed = lipgloss.NewStyle().Faint(true)
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	} else {
		s.Base = lipgloss.NewStyle()
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.GroupHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Label = lipgloss.NewStyle()
		s.ReqNumber = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.RespNumber = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28"))
		s.NoEvent = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
		s.Dimmed = lipgloss.NewStyle().Faint(true)
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
	}
	// Same-kind pairs get the kind color, mixed pairs a third treatment.
	s.Connector = map[diagram.Class]lipgloss.Style{
		diagram.ClassRequest:  s.ReqNumber,
		diagram.ClassResponse: s.RespNumber,
		diagram.ClassMixed:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	}
	return s
}
