package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is delivered once per interval while the clock runs.
type TickMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

// Clock schedules tea.Tick commands for a single countdown. Stop and Start
// bump the generation tag, so a tick scheduled before a stop is rejected.
type Clock struct {
	id       int
	tag      int
	running  bool
	interval time.Duration
}

// New returns a stopped clock. Non-positive intervals default to one second.
func New(interval time.Duration) Clock {
	if interval <= 0 {
		interval = time.Second
	}
	return Clock{id: nextID(), interval: interval}
}

// ID identifies the clock's ticks.
func (c Clock) ID() int { return c.id }

// Running reports whether ticks are being scheduled.
func (c Clock) Running() bool { return c.running }

// Start begins a new tick chain, invalidating any previous one.
func (c *Clock) Start() tea.Cmd {
	c.tag++
	c.running = true
	return c.tick()
}

// Stop cancels the current tick chain.
func (c *Clock) Stop() {
	c.tag++
	c.running = false
}

// Accept reports whether msg belongs to the live tick chain.
func (c Clock) Accept(msg TickMsg) bool {
	return c.running && msg.ID == c.id && msg.Tag == c.tag
}

// Next schedules the following tick, or nothing once stopped.
func (c Clock) Next() tea.Cmd {
	if !c.running {
		return nil
	}
	return c.tick()
}

func (c Clock) tick() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag, Time: t}
	})
}
