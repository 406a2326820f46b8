package ui

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// overlay draws the active modal centered over the main view. The popup
// replaces the covered region; the surrounding frame is repainted on the
// next full render anyway.
func (m *Model) overlay(_ string) string {
	title := m.styles.PopupTitle.Render(m.modalTitle)
	hint := m.styles.Help.Render("esc to close, arrows to scroll")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.modalVP.View(), "", hint)
	box := m.styles.PopupBox.Render(content)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, box)
}

// copyToClipboard uses OSC 52 so copying works over SSH too. Terminals
// without OSC 52 support ignore the sequence.
func copyToClipboard(text string) {
	b64 := base64.StdEncoding.EncodeToString([]byte(text))
	fmt.Fprintf(os.Stderr, "\x1b]52;c;%s\a", b64)
}
