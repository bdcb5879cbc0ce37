package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"modern-notepad/internal/autosave"
	"modern-notepad/internal/config"
	"modern-notepad/internal/controllers"
	"modern-notepad/internal/logger"
	"modern-notepad/internal/recent"
	"modern-notepad/internal/session"
	"modern-notepad/internal/shutdown"
	"modern-notepad/internal/storage"
	"modern-notepad/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Modern Notepad"
	AppID      = "com.texteditor.modern-notepad"
	AppVersion = "1.0.0"

	WindowWidth  = 1000
	WindowHeight = 700
)

// Application wires the session core, persistence and auto-save to the GUI
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	sessionManager *session.Manager
	recentFiles    *recent.List
	settings       *config.Settings
	autoSaveTimer  *autosave.Timer
	shutdownMgr    *shutdown.Manager
}

func main() {
	application, err := NewApplication()
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()

	log.Println("Application terminated successfully")
}

// NewApplication creates and initializes the application using dependency
// injection
func NewApplication() (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()

	appLogger := buildLogger()

	appLogger.Info("application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
	})

	// Load settings; a corrupt file degrades to defaults.
	settingsPath := config.DefaultPath()
	settings, err := config.Load(settingsPath)
	if err != nil {
		if errors.Is(err, config.ErrSettingsCorrupt) {
			appLogger.Warning("settings file corrupt, using defaults", map[string]interface{}{
				"path": settingsPath,
			})
		} else {
			return nil, err
		}
	}

	recentFiles, err := recent.NewList(recent.MaxEntries)
	if err != nil {
		return nil, err
	}

	store := storage.NewAdapter()
	policy := session.SpawnUntitled
	if settings.CloseLastTab == config.CloseLastAllowEmpty {
		policy = session.AllowEmpty
	}
	sessionManager := session.NewManager(store, recentFiles, appLogger, policy)

	mainController := controllers.NewMainController(
		sessionManager, recentFiles, settings, settingsPath, appLogger,
	)
	mainView := views.NewMainView(window)

	mainController.SetMainView(mainView)
	mainController.SetQuitFunc(fyneApp.Quit)

	autoSaveTimer := autosave.NewTimer(
		time.Duration(settings.AutoSaveIntervalSec)*time.Second,
		sessionManager,
		fyne.Do,
		mainController.NotifyAutoSave,
		appLogger,
	)

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register(mainController)
	shutdownMgr.Register(autoSaveTimer)

	application := &Application{
		fyneApp:        fyneApp,
		window:         window,
		logger:         appLogger,
		controller:     mainController,
		view:           mainView,
		sessionManager: sessionManager,
		recentFiles:    recentFiles,
		settings:       settings,
		autoSaveTimer:  autoSaveTimer,
		shutdownMgr:    shutdownMgr,
	}

	application.setupWindowEvents()

	appLogger.Info("application initialized", map[string]interface{}{
		"theme":              settings.Theme,
		"auto_save_interval": settings.AutoSaveIntervalSec,
		"recent_files":       len(settings.RecentFiles),
	})

	return application, nil
}

// Run starts the event loop, opening the optional CLI file argument first
func (a *Application) Run() {
	a.controller.Bootstrap(initialFileArg())
	a.autoSaveTimer.Start()
	a.shutdownMgr.Listen()

	a.view.Show()
	a.fyneApp.Run()

	a.shutdownMgr.Shutdown()
}

// setupWindowEvents intercepts window close so unsaved buffers get a
// confirmation prompt
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.controller.RequestQuit()
	})
}

// buildLogger selects the log sink from the environment: a rotating JSON
// file when NOTEPAD_LOG_FILE is set, JSON on stdout when LOG_FORMAT=json,
// otherwise human-readable console output
func buildLogger() logger.Logger {
	level := determineLogLevel()

	if path := os.Getenv("NOTEPAD_LOG_FILE"); path != "" {
		return logger.NewRotatingFileLogger(path, level)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		return logger.NewJSONLogger(level, os.Stdout)
	}
	return logger.NewStructuredLogger(level)
}

// determineLogLevel determines the log level from the environment
func determineLogLevel() logger.LogLevel {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return logger.DebugLevel
	case "info":
		return logger.InfoLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return logger.DebugLevel
		}
		return logger.InfoLevel
	}
}

// initialFileArg returns the optional file path argument, cleaned
func initialFileArg() string {
	if len(os.Args) < 2 {
		return ""
	}
	return filepath.Clean(os.Args[1])
}
