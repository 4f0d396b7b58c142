package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/session"
	"github.com/akyairhashvil/zenith/internal/sound"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.Finished() {
		return m.renderSummary()
	}
	sections := []string{
		m.renderHeader(),
		m.renderTimer(),
		m.renderGoal(),
		m.renderAmbience(),
	}
	if m.width == 0 || m.width >= config.CompactModeThreshold {
		sections = append(sections, m.renderHeatmap())
	}
	sections = append(sections, m.renderFooter())
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return m.theme.Base.Render(body)
}

func (m Model) renderHeader() string {
	logo := m.theme.Logo.Render("ZENITH")
	pulse := m.theme.Dim.Render(dailyPulse(m.session.Snapshot().FocusSeconds))
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", pulse)
}

// dailyPulse shows the running session's focus total in whole minutes.
func dailyPulse(focusSeconds int) string {
	return fmt.Sprintf("Daily Pulse: %dm", focusSeconds/60)
}

// statusLabel is the caption under the countdown.
func statusLabel(snap session.Snapshot) string {
	switch {
	case snap.Status == models.StatusRunning:
		return "DEEP WORK"
	case snap.Paused:
		return "PAUSED"
	default:
		return "READY?"
	}
}

func (m Model) renderTimer() string {
	snap := m.session.Snapshot()
	label := statusLabel(snap)
	style := m.theme.Ready
	switch label {
	case "DEEP WORK":
		style = m.theme.Running
	case "PAUSED":
		style = m.theme.Paused
	}
	clockText := m.theme.Timer.Render(FormatClock(snap.RemainingSeconds))
	bar := m.progress.ViewAs(snap.Progress())
	return lipgloss.JoinVertical(lipgloss.Center, "", clockText, style.Render(label), bar, "")
}

func (m Model) renderGoal() string {
	if m.editing {
		return m.theme.Input.Render(m.goalInput.View())
	}
	goal := m.session.Snapshot().Goal
	if goal == "" {
		return m.theme.Dim.Render("[e] set a focus goal")
	}
	width := config.ProgressWidth
	if m.width > 0 && m.width-8 < width {
		width = m.width - 8
	}
	if width < config.MinProgressWidth {
		width = config.MinProgressWidth
	}
	if ansi.StringWidth(goal) > width {
		goal = ansi.Truncate(goal, width, config.TruncationSuffix)
	}
	return m.theme.Focused.Render(goal)
}

func (m Model) renderAmbience() string {
	active, playing := m.sound.Active()
	buttons := make([]string, 0, len(sound.Tracks))
	for i, id := range sound.Tracks {
		text := fmt.Sprintf("%d %s", i+1, id.Label())
		style := m.theme.Button
		if playing && active == id {
			style = m.theme.Active
		}
		buttons = append(buttons, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) renderFooter() string {
	var lines []string
	if m.Message != "" {
		lines = append(lines, m.theme.Error.Render(m.Message))
	}
	help := m.keys.HelpFor(m.mode())
	if m.editing {
		help = "[enter] save  [esc] cancel"
	}
	if m.width > 0 && ansi.StringWidth(help) > m.width-4 && m.width > 4 {
		help = ansi.Truncate(help, m.width-4, config.TruncationSuffix)
	}
	lines = append(lines, m.theme.Dim.Render(help))
	return strings.Join(lines, "\n")
}
