package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which bindings are live.
type Mode int

const (
	ModeTimer Mode = iota
	ModeEditGoal
	ModeSummary
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Label       string
	Description string
	Modes       []Mode
	Priority    int
}

func (b KeyBinding) AppliesTo(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesTo(m.mode()) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode Mode) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(mode Mode) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(mode) {
		if b.Description == "" {
			continue
		}
		label := b.Label
		if label == "" && len(b.Keys) > 0 {
			label = b.Keys[0]
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}
