package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/history"
	"github.com/charmbracelet/lipgloss"
)

const heatCell = "■"

// heatLevel maps a day's minutes to one of five intensity levels.
func heatLevel(minutes float64) int {
	switch {
	case minutes <= 0:
		return 0
	case minutes < config.HeatLow:
		return 1
	case minutes < config.HeatMedium:
		return 2
	case minutes < config.HeatHigh:
		return 3
	default:
		return 4
	}
}

// heatmapGrid returns weeks columns of seven levels each, Sunday first.
// The last column holds today's week; days after today are -1.
func heatmapGrid(h *history.History, now time.Time, weeks int) [][7]int {
	if weeks <= 0 {
		return nil
	}
	y, mo, d := now.Date()
	today := time.Date(y, mo, d, 12, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -int(today.Weekday())-7*(weeks-1))
	grid := make([][7]int, weeks)
	for w := 0; w < weeks; w++ {
		for wd := 0; wd < 7; wd++ {
			day := start.AddDate(0, 0, w*7+wd)
			if day.After(today) {
				grid[w][wd] = -1
				continue
			}
			grid[w][wd] = heatLevel(h.MinutesOn(day))
		}
	}
	return grid
}

func (m Model) renderHeatmap() string {
	grid := heatmapGrid(m.history, m.now(), config.HeatmapWeeks)
	rows := make([]string, 7)
	for wd := 0; wd < 7; wd++ {
		var b strings.Builder
		for w := range grid {
			if w > 0 {
				b.WriteString(" ")
			}
			level := grid[w][wd]
			if level < 0 {
				b.WriteString(" ")
				continue
			}
			b.WriteString(m.theme.Heat[level].Render(heatCell))
		}
		rows[wd] = b.String()
	}
	title := m.theme.Dim.Render(fmt.Sprintf("Last %d weeks", config.HeatmapWeeks))
	return lipgloss.JoinVertical(lipgloss.Center, "", title, strings.Join(rows, "\n"))
}
