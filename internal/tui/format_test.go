package tui

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		1500: "25:00",
		247:  "4:07",
		59:   "0:59",
		0:    "0:00",
		-5:   "0:00",
		7200: "120:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		45 * time.Second:             "45s",
		12 * time.Minute:             "12m",
		2 * time.Hour:                "2h",
		2*time.Hour + 15*time.Minute: "2h 15m",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(3); got != "3m" {
		t.Fatalf("expected 3m, got %q", got)
	}
	if got := FormatMinutes(90.5); got != "1h 30m" {
		t.Fatalf("expected 1h 30m, got %q", got)
	}
	if got := FormatMinutes(0.5); got != "30s" {
		t.Fatalf("expected 30s, got %q", got)
	}
}
