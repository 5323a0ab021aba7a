package editor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"pyedit/internal/files"
	"pyedit/internal/logger"
	"pyedit/internal/process"
)

const component = "Shell"

var ErrBusy = errors.New("another command is still running")

// Presenter is the modal surface actions report through
type Presenter interface {
	ShowInfo(title, message string)
	ShowError(title, message string)
	ShowListing(title, text string)
}

// Commands names the external executables the shell drives
type Commands struct {
	Interpreter     string
	InterpreterFlag string
	PackageManager  string
	SelfPackage     string
	Extension       string
}

type Shell struct {
	buffer    Buffer
	edit      EditControl
	runner    process.Runner
	presenter Presenter
	logger    logger.Logger
	commands  Commands

	busy   atomic.Bool
	ctx    context.Context
	cancel context.CancelFunc
}

func NewShell(buffer Buffer, edit EditControl, runner process.Runner, presenter Presenter, cmds Commands, log logger.Logger) *Shell {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Shell{
		buffer:    buffer,
		edit:      edit,
		runner:    runner,
		presenter: presenter,
		logger:    log,
		commands:  cmds,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Context is cancelled by Shutdown, killing any running child.
func (s *Shell) Context() context.Context {
	return s.ctx
}

func (s *Shell) Shutdown() {
	s.logger.Info(component, "shutting down", map[string]interface{}{
		"busy": s.busy.Load(),
	})
	s.cancel()
}

func (s *Shell) Busy() bool {
	return s.busy.Load()
}

// New clears the buffer unconditionally.
func (s *Shell) New() {
	s.buffer.SetText("")
	s.logger.Debug(component, "buffer cleared", nil)
}

// Open replaces the buffer with the file at path. An empty path is a cancelled picker.
func (s *Shell) Open(path string) error {
	if path == "" {
		return nil
	}

	text, err := files.Read(path)
	if err != nil {
		s.logger.Error(component, err, map[string]interface{}{"path": path})
		s.presenter.ShowError("Error", err.Error())
		return err
	}

	s.buffer.SetText(text)
	s.logger.Info(component, "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

// Save writes the whole buffer to path and returns the path actually written.
func (s *Shell) Save(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	path = files.Resolve(path, s.commands.Extension)
	text := s.buffer.Text()
	if err := files.Write(path, text); err != nil {
		s.logger.Error(component, err, map[string]interface{}{"path": path})
		s.presenter.ShowError("Error", err.Error())
		return path, err
	}

	s.logger.Info(component, "file saved", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return path, nil
}

func (s *Shell) Run(ctx context.Context) error {
	return s.RunSource(ctx, s.buffer.Text())
}

// RunSource executes src in a fresh interpreter and reports its combined output.
func (s *Shell) RunSource(ctx context.Context, src string) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	res, err := s.runner.Run(ctx, s.commands.Interpreter, s.commands.InterpreterFlag, src)
	if err != nil {
		s.fail("run", "Error", failureText(err), err)
		return err
	}

	s.logRun("run", res)
	s.presenter.ShowInfo("Output", res.Output)
	return nil
}

// InstallFramework installs name with the package manager. An empty name does nothing.
func (s *Shell) InstallFramework(ctx context.Context, name string) error {
	if name == "" {
		s.logger.Debug(component, "install cancelled", nil)
		return nil
	}
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	res, err := s.runner.Run(ctx, s.commands.PackageManager, "install", name)
	if err != nil {
		s.fail("install", "Error", withOutput(fmt.Sprintf("Failed to install %s: %v", name, err), err), err)
		return err
	}

	s.logRun("install", res)
	s.presenter.ShowInfo("Success", fmt.Sprintf("%s installed successfully!", name))
	return nil
}

// InstalledFrameworks opens one listing window with the package manager's list output.
func (s *Shell) InstalledFrameworks(ctx context.Context) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	res, err := s.runner.Run(ctx, s.commands.PackageManager, "list")
	if err != nil {
		s.fail("list", "Error", failureText(err), err)
		return err
	}

	s.logRun("list", res)
	s.presenter.ShowListing("Installed Frameworks", res.Output)
	return nil
}

func (s *Shell) UpdatePackageManager(ctx context.Context) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	self := s.commands.SelfPackage
	res, err := s.runner.Run(ctx, s.commands.PackageManager, "install", "--upgrade", self)
	if err != nil {
		s.fail("upgrade", "Error", withOutput(fmt.Sprintf("Failed to update %s: %v", self, err), err), err)
		return err
	}

	s.logRun("upgrade", res)
	s.presenter.ShowInfo("Success", fmt.Sprintf("%s has been updated successfully!", titleCase(self)))
	return nil
}

func (s *Shell) Undo()      { s.edit.Undo() }
func (s *Shell) Redo()      { s.edit.Redo() }
func (s *Shell) Copy()      { s.edit.Copy() }
func (s *Shell) Paste()     { s.edit.Paste() }
func (s *Shell) SelectAll() { s.edit.SelectAll() }

func (s *Shell) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Warning(component, "command rejected while busy", nil)
		s.presenter.ShowError("Busy", ErrBusy.Error())
		return ErrBusy
	}
	return nil
}

func (s *Shell) release() {
	s.busy.Store(false)
}

func (s *Shell) fail(action, title, message string, err error) {
	s.logger.Error(component, err, map[string]interface{}{"action": action})
	s.presenter.ShowError(title, message)
}

func (s *Shell) logRun(action string, res *process.Result) {
	s.logger.Info(component, "command finished", map[string]interface{}{
		"action":      action,
		"command":     res.Command,
		"exit_code":   res.ExitCode,
		"duration_ms": res.Duration.Milliseconds(),
	})
}

// failureText is the captured output of a failed child, or the error itself
// when the child never started.
func failureText(err error) string {
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Output
	}
	return err.Error()
}

func withOutput(msg string, err error) string {
	var exitErr *process.ExitError
	if errors.As(err, &exitErr) && exitErr.Output != "" {
		return msg + "\n\n" + exitErr.Output
	}
	return msg
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
