package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/database"
	"github.com/akyairhashvil/zenith/internal/history"
	"github.com/akyairhashvil/zenith/internal/session"
	"github.com/akyairhashvil/zenith/internal/sound"
	"github.com/akyairhashvil/zenith/internal/tui"
	"github.com/akyairhashvil/zenith/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type appPaths struct {
	DB       string
	Log      string
	Sounds   string
	Reports  string
	Settings string
}

// resolvePaths lays out the files the app uses under dataDir.
func resolvePaths(dataDir, settingsPath string, s config.Settings) appPaths {
	return appPaths{
		DB:       filepath.Join(dataDir, config.DBFileName),
		Log:      filepath.Join(dataDir, config.LogFileName),
		Sounds:   util.ResolveUnder(dataDir, s.SoundsDir),
		Reports:  util.ReportsDir(config.AppName),
		Settings: settingsPath,
	}
}

func loadSettings() (config.Settings, string) {
	path, err := config.SettingsPath(config.AppName)
	if err != nil {
		util.LogError("resolve settings path", err)
		return config.DefaultSettings(), ""
	}
	s, err := config.LoadSettings(path)
	if err != nil {
		util.LogError("load settings", err)
	}
	return s, path
}

func main() {
	os.Exit(start())
}

// start runs the app and returns the process exit code, so deferred cleanup
// runs before exiting.
func start() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "zenith needs an interactive terminal")
		return 1
	}

	// 1. Data directory and log file
	dataDir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	if f, err := tea.LogToFile(filepath.Join(dataDir, config.LogFileName), config.AppName); err == nil {
		defer f.Close()
	}

	settings, settingsPath := loadSettings()
	paths := resolvePaths(dataDir, settingsPath, settings)

	if err := run(context.Background(), paths, settings); err != nil {
		if errors.Is(err, database.ErrDatabaseCorrupted) {
			fmt.Printf("The database at %s is not readable. Move it aside to start fresh.\n", paths.DB)
		} else {
			fmt.Printf("Alas, there's been an error: %v\n", err)
		}
		return 1
	}
	return 0
}

func run(ctx context.Context, paths appPaths, settings config.Settings) error {
	// 2. Initialize Database
	db, err := database.Open(ctx, paths.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	// 3. Initialize the Main Model
	cfg := session.DefaultConfig()
	cfg.Duration = settings.Duration
	model := tui.NewModel(ctx, tui.Deps{
		Session:    session.New(cfg),
		History:    history.Load(ctx, db, config.HistoryKey),
		Sound:      sound.NewController(sound.NewBeepPlayer(), paths.Sounds),
		Log:        db,
		ReportsDir: paths.Reports,
		Theme:      settings.Theme,

		Settings:     settings,
		SettingsPath: paths.Settings,
	})
	defer model.Close()

	// 4. Start Program
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
