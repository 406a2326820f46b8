package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Submit      tea.Key
	FocusSwitch tea.Key
	Inspect     tea.Key
	Delete      tea.Key
	ClearAll    tea.Key
	Filter      tea.Key
	ClearFilter tea.Key
	Export      tea.Key
	Explain     tea.Key
	CopyEntry   tea.Key
	Top         tea.Key
	Bottom      tea.Key
	AppLogs     tea.Key
	Help        tea.Key
	Quit        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      tea.Key{Type: tea.KeyCtrlS},
		FocusSwitch: tea.Key{Type: tea.KeyTab},
		Inspect:     tea.Key{Type: tea.KeyEnter},
		Delete:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'d'}},
		ClearAll:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'C'}},
		Filter:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		ClearFilter: tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		Export:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		Explain:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'i'}},
		CopyEntry:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'c'}},
		Top:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'g'}},
		Bottom:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'G'}},
		AppLogs:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Help:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
