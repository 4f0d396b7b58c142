package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// summaryMinutes is the whole minutes focused in the finished session.
func summaryMinutes(focusSeconds int) int {
	return focusSeconds / 60
}

func (m Model) renderSummary() string {
	snap := m.session.Snapshot()
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Logo.Render("SESSION COMPLETE"),
		"",
		m.theme.Focused.Render(m.session.Goal()),
		m.theme.Timer.Render(fmt.Sprintf("%d minutes focused", summaryMinutes(snap.FocusSeconds))),
		"",
		m.theme.Dim.Render(m.keys.HelpFor(ModeSummary)),
	)
	modal := m.theme.ModalStyle().Render(content)
	if m.width <= 0 || m.height <= 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
