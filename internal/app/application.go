package app

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"pyedit/internal/config"
	"pyedit/internal/editor"
	"pyedit/internal/gui"
	"pyedit/internal/logger"
	"pyedit/internal/process"
	"pyedit/internal/shutdown"
)

const (
	AppName    = "Python Code Editor"
	AppID      = "com.pyedit.editor"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	view    *gui.View
	shell   *editor.Shell
	logger  logger.Logger

	shutdown *shutdown.Manager
}

// NewApplication builds the desktop application from cfg.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	return newApplication(fyneApp, cfg, process.NewExecRunner(log), log), nil
}

func newApplication(fyneApp fyne.App, cfg config.Config, runner process.Runner, log logger.Logger) *Application {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()

	listingSize := fyne.NewSize(cfg.ListingWindow.Width, cfg.ListingWindow.Height)
	view := gui.NewView(fyneApp, window, listingSize, log)

	shell := editor.NewShell(view, view, runner, view, editor.Commands{
		Interpreter:     cfg.Interpreter,
		InterpreterFlag: cfg.InterpreterFlag,
		PackageManager:  cfg.PackageManager,
		SelfPackage:     cfg.SelfPackage,
		Extension:       cfg.Extension,
	}, log)

	a := &Application{
		fyneApp:  fyneApp,
		window:   window,
		view:     view,
		shell:    shell,
		logger:   log,
		shutdown: shutdown.NewManager(log),
	}

	a.shutdown.Register("shell", shell)
	view.SetQuitHandler(a.Quit)
	view.SetMainMenu(gui.BuildMainMenu(shell.Actions(view)))
	a.setupWindowEvents()

	log.Info("Application", "initialized", map[string]interface{}{
		"version":         AppVersion,
		"window_size":     fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"interpreter":     cfg.Interpreter,
		"package_manager": cfg.PackageManager,
		"go_version":      runtime.Version(),
	})
	return a
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.Quit()
	})
}

// Run shows the main window and blocks in the Fyne event loop.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	return nil
}

// Quit kills any running child and leaves the event loop.
func (a *Application) Quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}

// NewLogger builds the logger described by cfg.Log. The closer is non-nil
// when a log file was opened.
func NewLogger(cfg config.Config) (logger.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		if cfg.Log.JSON {
			return logger.NewZerolog(os.Stderr, cfg.LogLevel()), nil, nil
		}
		return logger.NewConsoleLogger(cfg.LogLevel()), nil, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.New(f, cfg.LogLevel(), cfg.Log.JSON), f, nil
}
