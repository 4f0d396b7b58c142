package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadSettingsClampsDuration(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		body string
		want time.Duration
	}{
		{"duration_minutes: 500\n", MaxDuration},
		{"duration_minutes: -3\n", MinDuration},
		{"duration_minutes: 50\n", 50 * time.Minute},
		{"theme: dracula\n", DefaultDuration},
	}
	for i, tc := range cases {
		path := filepath.Join(dir, "settings.yaml")
		if err := os.WriteFile(path, []byte(tc.body), 0o600); err != nil {
			t.Fatalf("case %d: WriteFile failed: %v", i, err)
		}
		got, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("case %d: LoadSettings failed: %v", i, err)
		}
		if got.Duration != tc.want {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, got.Duration)
		}
	}
}

func TestLoadSettingsRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("duration_minutes: [oops"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if got != DefaultSettings() {
		t.Fatalf("expected defaults alongside error, got %+v", got)
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Settings{Duration: 45 * time.Minute, SoundsDir: "/opt/sounds", Theme: "dracula"}
	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
