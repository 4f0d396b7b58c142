package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
)

func TestResolvePaths(t *testing.T) {
	dir := t.TempDir()
	s := config.DefaultSettings()

	paths := resolvePaths(dir, "settings.yaml", s)
	if paths.DB != filepath.Join(dir, "zenith.db") {
		t.Fatalf("unexpected db path %s", paths.DB)
	}
	if paths.Log != filepath.Join(dir, "zenith.log") {
		t.Fatalf("unexpected log path %s", paths.Log)
	}
	if paths.Sounds != filepath.Join(dir, "sounds") {
		t.Fatalf("unexpected sounds dir %s", paths.Sounds)
	}

	abs := filepath.Join(dir, "elsewhere")
	s.SoundsDir = abs
	if got := resolvePaths(dir, "", s).Sounds; got != abs {
		t.Fatalf("expected absolute sounds dir kept, got %s", got)
	}
}

func TestRunFailsOnCorruptDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "zenith.db")
	junk := make([]byte, 4096)
	for i := range junk {
		junk[i] = byte(i % 251)
	}
	if err := os.WriteFile(dbPath, junk, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	paths := resolvePaths(dir, "", config.DefaultSettings())
	err := run(context.Background(), paths, config.DefaultSettings())
	if !errors.Is(err, database.ErrDatabaseCorrupted) {
		t.Fatalf("expected ErrDatabaseCorrupted, got %v", err)
	}
	if _, statErr := os.Stat(dbPath); statErr != nil {
		t.Fatalf("database file should be left in place: %v", statErr)
	}
}

func TestStartRequiresTerminal(t *testing.T) {
	// go test pipes stdout, so the terminal check fails before any file is touched.
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	if code := start(); code != 1 {
		t.Fatalf("expected exit code 1 without a terminal, got %d", code)
	}
}
