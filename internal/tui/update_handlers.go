package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/zenith/internal/clock"
	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/session"
	"github.com/akyairhashvil/zenith/internal/sound"
	"github.com/akyairhashvil/zenith/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

// handleTick advances the countdown by one second and credits the history.
func (m Model) handleTick(msg clock.TickMsg) (Model, tea.Cmd) {
	if !m.clock.Accept(msg) || !m.session.Running() {
		return m, nil
	}
	res := m.session.Tick()
	if res.Counted {
		at := msg.Time
		if at.IsZero() {
			at = m.now()
		}
		if err := m.history.Record(m.ctx, at); err != nil {
			util.LogError("record focus second", err)
		}
	}
	if !res.Finished {
		return m, m.clock.Next()
	}
	return m.handleFinish()
}

func (m Model) handleFinish() (Model, tea.Cmd) {
	m.clock.Stop()
	if err := m.sound.PlayCue(); err != nil {
		m.Message = "Completion cue unavailable"
	}
	if m.log != nil {
		snap := m.session.Snapshot()
		rec := models.SessionRecord{
			Goal:            m.session.Goal(),
			FocusSeconds:    snap.FocusSeconds,
			DurationSeconds: snap.DurationSeconds,
			CompletedAt:     m.now(),
		}
		if _, err := m.log.RecordSession(m.ctx, rec); err != nil {
			util.LogError("record session", err)
		}
	}
	return m, nil
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	started, err := m.session.Toggle()
	if err != nil {
		if errors.Is(err, session.ErrInvalidDuration) {
			m.Message = "Set a duration first"
		}
		return m, nil, true
	}
	m.Message = ""
	if started {
		return m, m.clock.Start(), true
	}
	m.clock.Stop()
	return m, nil, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.clock.Stop()
	m.session.Reset()
	m.Message = ""
	return m, nil, true
}

func handleAdjust(m Model, key string) (Model, tea.Cmd, bool) {
	delta := 1
	if key == "-" || key == "_" {
		delta = -1
	}
	if !m.session.AdjustMinutes(delta) {
		return m, nil, true
	}
	return m.saveDuration(), nil, true
}

// saveDuration persists the configured duration so it survives a restart.
func (m Model) saveDuration() Model {
	if m.settingsAt == "" {
		return m
	}
	m.settings.Duration = time.Duration(m.session.Snapshot().DurationSeconds) * time.Second
	if err := config.SaveSettings(m.settingsAt, m.settings); err != nil {
		util.LogError("save settings", err)
		m.Message = "Could not save duration"
	}
	return m
}

func handleEditGoal(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.session.Running() {
		return m, nil, true
	}
	m.editing = true
	m.goalInput.SetValue(m.session.Snapshot().Goal)
	m.goalInput.CursorEnd()
	return m, m.goalInput.Focus(), true
}

// handleEditing routes keys to the goal input until enter or esc.
func (m Model) handleEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.session.SetGoal(m.goalInput.Value())
		m.editing = false
		m.goalInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.goalInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	return m, cmd
}

func handleSound(m Model, key string) (Model, tea.Cmd, bool) {
	id := sound.Rain
	if key == "2" {
		id = sound.Lofi
	}
	if err := m.sound.Toggle(id); err != nil {
		m.Message = fmt.Sprintf("%s unavailable", id.Label())
		return m, nil, true
	}
	m.Message = ""
	return m, nil, true
}

func handleAcknowledge(m Model, _ string) (Model, tea.Cmd, bool) {
	m.session.Acknowledge()
	m.Message = ""
	return m, nil, true
}

func handleReport(m Model, _ string) (Model, tea.Cmd, bool) {
	path, err := GeneratePDFReport(m.ctx, m.history, m.log, m.reportsDir, m.now())
	if err != nil {
		util.LogError("generate report", err)
		m.Message = fmt.Sprintf("Report failed: %v", err)
	} else {
		m.Message = fmt.Sprintf("Report saved: %s", path)
	}
	return m, nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.quit()
	return next, cmd, true
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	timer := []Mode{ModeTimer}
	r.Register(KeyBinding{Keys: []string{" "}, Label: "space", Description: "start/pause", Modes: timer, Handler: handleToggle})
	r.Register(KeyBinding{Keys: []string{"r"}, Description: "reset", Modes: timer, Handler: handleReset})
	r.Register(KeyBinding{Keys: []string{"+", "="}, Label: "+/-", Description: "duration", Modes: timer, Handler: handleAdjust})
	r.Register(KeyBinding{Keys: []string{"-", "_"}, Label: "+/-", Modes: timer, Handler: handleAdjust})
	r.Register(KeyBinding{Keys: []string{"e"}, Description: "goal", Modes: timer, Handler: handleEditGoal})
	r.Register(KeyBinding{Keys: []string{"1", "2"}, Label: "1/2", Description: "ambience", Modes: []Mode{ModeTimer, ModeSummary}, Handler: handleSound})
	r.Register(KeyBinding{Keys: []string{"x"}, Description: "report", Modes: timer, Handler: handleReport})
	r.Register(KeyBinding{Keys: []string{"enter", "esc"}, Label: "enter", Description: "continue", Modes: []Mode{ModeSummary}, Handler: handleAcknowledge, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"q"}, Description: "quit", Modes: []Mode{ModeTimer, ModeSummary}, Handler: handleQuit})
	return r
}
