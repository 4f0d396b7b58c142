package session

import (
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/models"
	"github.com/akyairhashvil/zenith/internal/util"
)

var (
	ErrNotIdle         = errors.New("session is not idle")
	ErrInvalidDuration = errors.New("session duration must be positive")
)

// Config is the explicit session configuration.
type Config struct {
	Duration   time.Duration
	MinMinutes int
	MaxMinutes int
}

// DefaultConfig returns a 25 minute session clamped to 1-120 minutes.
func DefaultConfig() Config {
	return Config{
		Duration:   config.DefaultDuration,
		MinMinutes: config.MinDurationMinutes,
		MaxMinutes: config.MaxDurationMinutes,
	}
}

// TickResult reports what a single tick did.
type TickResult struct {
	Counted  bool
	Finished bool
}

// Snapshot is a read-only view for presenters.
type Snapshot struct {
	Status           models.SessionStatus
	DurationSeconds  int
	RemainingSeconds int
	FocusSeconds     int
	Goal             string
	Paused           bool
}

// Remaining returns the time left as a duration.
func (s Snapshot) Remaining() time.Duration {
	return time.Duration(s.RemainingSeconds) * time.Second
}

// Progress is the fraction of the countdown still remaining, in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.DurationSeconds <= 0 {
		return 0
	}
	return float64(s.RemainingSeconds) / float64(s.DurationSeconds)
}

// Session is the focus-session state machine. It owns no timers; callers
// feed it one Tick per elapsed second while it is running.
type Session struct {
	cfg       Config
	duration  int
	remaining int
	status    models.SessionStatus
	goal      string
	focus     int
}

// New creates an idle session. The configured duration is clamped into the
// configured minute range.
func New(cfg Config) *Session {
	if cfg.MinMinutes <= 0 {
		cfg.MinMinutes = config.MinDurationMinutes
	}
	if cfg.MaxMinutes < cfg.MinMinutes {
		cfg.MaxMinutes = config.MaxDurationMinutes
	}
	seconds := int(cfg.Duration / time.Second)
	if seconds <= 0 {
		seconds = int(config.DefaultDuration / time.Second)
	}
	s := &Session{cfg: cfg, status: models.StatusIdle}
	s.duration = util.Clamp(seconds, cfg.MinMinutes*60, cfg.MaxMinutes*60)
	s.remaining = s.duration
	return s
}

func (s *Session) Status() models.SessionStatus { return s.status }

func (s *Session) Running() bool { return s.status == models.StatusRunning }

func (s *Session) Finished() bool { return s.status == models.StatusFinished }

// Start moves an idle session to running.
func (s *Session) Start() error {
	if s.status != models.StatusIdle {
		return ErrNotIdle
	}
	if s.duration <= 0 || s.remaining <= 0 {
		return ErrInvalidDuration
	}
	s.status = models.StatusRunning
	return nil
}

// Pause stops the countdown and keeps the remaining time.
func (s *Session) Pause() {
	if s.status == models.StatusRunning {
		s.status = models.StatusIdle
	}
}

// Toggle is the start/pause control. It reports whether the session is now running.
func (s *Session) Toggle() (bool, error) {
	switch s.status {
	case models.StatusRunning:
		s.Pause()
		return false, nil
	case models.StatusIdle:
		if err := s.Start(); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, ErrNotIdle
	}
}

// Reset returns to idle with the configured duration from any state.
// The goal label is kept so the user can restart the same goal.
func (s *Session) Reset() {
	s.status = models.StatusIdle
	s.remaining = s.duration
	s.focus = 0
}

// Tick advances a running session by one second.
func (s *Session) Tick() TickResult {
	if s.status != models.StatusRunning {
		return TickResult{}
	}
	if s.remaining > 0 {
		s.remaining--
	}
	s.focus++
	if s.remaining == 0 {
		s.status = models.StatusFinished
		return TickResult{Counted: true, Finished: true}
	}
	return TickResult{Counted: true}
}

// Acknowledge closes a finished session's summary and clears the goal.
func (s *Session) Acknowledge() bool {
	if s.status != models.StatusFinished {
		return false
	}
	s.status = models.StatusIdle
	s.remaining = s.duration
	s.focus = 0
	s.goal = ""
	return true
}

// SetDurationMinutes reconfigures the countdown. Requests while not idle
// are ignored; others are clamped into the configured minute range.
func (s *Session) SetDurationMinutes(minutes int) bool {
	if s.status != models.StatusIdle {
		return false
	}
	s.duration = util.Clamp(minutes, s.cfg.MinMinutes, s.cfg.MaxMinutes) * 60
	s.remaining = s.duration
	s.focus = 0
	return true
}

// AdjustMinutes shifts the configured duration by delta minutes.
func (s *Session) AdjustMinutes(delta int) bool {
	return s.SetDurationMinutes(s.duration/60 + delta)
}

// SetGoal edits the goal label; only allowed while idle.
func (s *Session) SetGoal(label string) bool {
	if s.status != models.StatusIdle {
		return false
	}
	label = strings.TrimSpace(label)
	if r := []rune(label); len(r) > config.MaxGoalLength {
		label = string(r[:config.MaxGoalLength])
	}
	s.goal = label
	return true
}

// Goal returns the label, or the default name when none was set.
func (s *Session) Goal() string {
	if s.goal == "" {
		return config.DefaultGoalName
	}
	return s.goal
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Status:           s.status,
		DurationSeconds:  s.duration,
		RemainingSeconds: s.remaining,
		FocusSeconds:     s.focus,
		Goal:             s.goal,
		Paused:           s.status == models.StatusIdle && s.remaining < s.duration,
	}
}
