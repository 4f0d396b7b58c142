package tui

import "testing"

func TestModalStyleUsesThemeBorder(t *testing.T) {
	for name, theme := range Themes {
		if got := theme.ModalStyle().GetBorderTopForeground(); got != theme.Border {
			t.Fatalf("theme %s: modal border %v, want %v", name, got, theme.Border)
		}
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := ThemeByName("dracula").Name; got != "Dracula" {
		t.Fatalf("expected Dracula, got %s", got)
	}
	if got := ThemeByName("missing").Name; got != "Default" {
		t.Fatalf("expected Default fallback, got %s", got)
	}
}
