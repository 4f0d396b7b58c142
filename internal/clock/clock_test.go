package clock

import (
	"testing"
	"time"
)

func fire(t *testing.T, c Clock) TickMsg {
	t.Helper()
	cmd := c.Next()
	if cmd == nil {
		t.Fatalf("expected a tick command")
	}
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg")
	}
	return msg
}

func TestNewDefaults(t *testing.T) {
	c := New(0)
	if c.interval != time.Second {
		t.Fatalf("expected default interval of 1s, got %v", c.interval)
	}
	if c.Running() {
		t.Fatalf("new clock should be stopped")
	}
	if c.Next() != nil {
		t.Fatalf("stopped clock should not schedule ticks")
	}
	if other := New(time.Second); other.ID() == c.ID() {
		t.Fatalf("clocks should get distinct IDs")
	}
}

func TestStartAcceptsOwnTicks(t *testing.T) {
	c := New(time.Millisecond)
	cmd := c.Start()
	if cmd == nil {
		t.Fatalf("Start should return a command")
	}
	msg := cmd().(TickMsg)
	if !c.Accept(msg) {
		t.Fatalf("expected tick to be accepted")
	}
	next := fire(t, c)
	if !c.Accept(next) {
		t.Fatalf("expected follow-up tick to be accepted")
	}
}

func TestStopRejectsInFlightTick(t *testing.T) {
	c := New(time.Millisecond)
	cmd := c.Start()
	msg := cmd().(TickMsg)
	c.Stop()
	if c.Accept(msg) {
		t.Fatalf("tick delivered after Stop must be rejected")
	}
	if c.Next() != nil {
		t.Fatalf("stopped clock should not reschedule")
	}
}

func TestRestartRejectsOldChain(t *testing.T) {
	c := New(time.Millisecond)
	old := c.Start()().(TickMsg)
	c.Stop()
	fresh := c.Start()().(TickMsg)
	if c.Accept(old) {
		t.Fatalf("tick from the previous run must be rejected")
	}
	if !c.Accept(fresh) {
		t.Fatalf("tick from the current run must be accepted")
	}
}

func TestRejectsForeignClock(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)
	a.Start()
	msg := b.Start()().(TickMsg)
	if a.Accept(msg) {
		t.Fatalf("tick from another clock must be rejected")
	}
}
