package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/zenith/internal/clock"
	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/history"
	"github.com/akyairhashvil/zenith/internal/session"
	"github.com/akyairhashvil/zenith/internal/sound"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators the root model drives.
type Deps struct {
	Session    *session.Session
	History    *history.History
	Sound      *sound.Controller
	Log        SessionLog // optional
	ReportsDir string
	Theme      string
	Now        func() time.Time

	// Settings is written back to SettingsPath when the duration changes.
	// An empty path disables saving.
	Settings     config.Settings
	SettingsPath string
}

// Model is the root bubbletea model: timer, ambience, heatmap and summary.
type Model struct {
	ctx        context.Context
	session    *session.Session
	history    *history.History
	sound      *sound.Controller
	log        SessionLog
	clock      clock.Clock
	keys       *HandlerRegistry
	theme      Theme
	progress   progress.Model
	goalInput  textinput.Model
	editing    bool
	reportsDir string
	now        func() time.Time
	settings   config.Settings
	settingsAt string
	Message    string
	err        error
	quitting   bool
	width      int
	height     int
}

func NewModel(ctx context.Context, deps Deps) Model {
	if deps.Session == nil {
		deps.Session = session.New(session.DefaultConfig())
	}
	if deps.History == nil {
		deps.History = history.Load(ctx, history.NewMemoryStore(), config.HistoryKey)
	}
	if deps.Sound == nil {
		deps.Sound = sound.NewController(sound.Silent{}, "")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	theme := ThemeByName(deps.Theme)

	gi := textinput.New()
	gi.Placeholder = "What is your focus goal?"
	gi.CharLimit = config.MaxGoalLength
	gi.Width = 40

	m := Model{
		ctx:        ctx,
		session:    deps.Session,
		history:    deps.History,
		sound:      deps.Sound,
		log:        deps.Log,
		clock:      clock.New(config.TickInterval),
		keys:       defaultRegistry(),
		theme:      theme,
		progress:   progress.New(progress.WithGradient(theme.Gradient[0], theme.Gradient[1]), progress.WithoutPercentage()),
		goalInput:  gi,
		reportsDir: deps.ReportsDir,
		now:        deps.Now,
		settings:   deps.Settings,
		settingsAt: deps.SettingsPath,
	}
	m.progress.Width = config.ProgressWidth
	if !m.history.Persistent() {
		m.Message = "History unreadable; today's focus will not be saved"
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) mode() Mode {
	switch {
	case m.session.Finished():
		return ModeSummary
	case m.editing:
		return ModeEditGoal
	default:
		return ModeTimer
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case clock.TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.editing {
			return m.handleEditing(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	if m.editing {
		var cmd tea.Cmd
		m.goalInput, cmd = m.goalInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Close stops the clock and releases ambient playback.
func (m *Model) Close() {
	m.clock.Stop()
	m.sound.Close()
}

func (m Model) quit() (Model, tea.Cmd) {
	m.Close()
	m.quitting = true
	return m, tea.Quit
}
