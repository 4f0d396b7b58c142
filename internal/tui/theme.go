package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Border   lipgloss.Color
	Logo     lipgloss.Style
	Timer    lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Ready    lipgloss.Style
	Input    lipgloss.Style
	Button   lipgloss.Style
	Active   lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
	Modal    lipgloss.Style
	Heat     [5]lipgloss.Style
	Gradient [2]string
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("178"),
		Logo:     lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
		Timer:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true),
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
		Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Ready:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("178")).Padding(0, 1).Width(44),
		Button:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Active:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("178")).Foreground(lipgloss.Color("178")).Padding(0, 1).Bold(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 4).Align(lipgloss.Center),
		Gradient: [2]string{"#8a6d1f", "#d4af37"},
		Heat: [5]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("58")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("100")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		},
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("141"),
		Logo:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Timer:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Ready:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(44),
		Button:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		Active:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("141")).Foreground(lipgloss.Color("141")).Padding(0, 1).Bold(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 4).Align(lipgloss.Center),
		Gradient: [2]string{"#6272a4", "#bd93f9"},
		Heat: [5]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("92")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		},
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ModalStyle is the summary frame drawn in the theme's border color.
func (t Theme) ModalStyle() lipgloss.Style {
	return t.Modal.BorderForeground(t.Border)
}
