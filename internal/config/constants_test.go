package config

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if DefaultDuration != 1500*time.Second {
		t.Fatalf("DefaultDuration should be 1500s, got %v", DefaultDuration)
	}
	if MinDurationMinutes != 1 || MaxDurationMinutes != 120 {
		t.Fatalf("unexpected duration limits %d-%d", MinDurationMinutes, MaxDurationMinutes)
	}
	if DefaultDuration < MinDuration || DefaultDuration > MaxDuration {
		t.Fatalf("DefaultDuration outside limits")
	}
	if AmbientVolume <= 0 || AmbientVolume > 1 || CueVolume <= 0 || CueVolume > 1 {
		t.Fatalf("volumes must be in (0, 1]")
	}
	if HistoryKey == "" || AppName == "" || DBFileName == "" {
		t.Fatalf("persistence names should not be empty")
	}
	if !(HeatLow < HeatMedium && HeatMedium < HeatHigh) {
		t.Fatalf("heatmap thresholds must increase")
	}
}
