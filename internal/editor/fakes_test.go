package editor

import (
	"context"
	"strings"
	"sync"

	"pyedit/internal/process"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	mu     sync.Mutex
	calls  []call
	result func(name string, args []string) (*process.Result, error)
	block  chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (*process.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{name: name, args: args})
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}
	if f.result == nil {
		return &process.Result{Command: name}, nil
	}
	return f.result(name, args)
}

func (f *fakeRunner) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func succeed(output string) func(string, []string) (*process.Result, error) {
	return func(name string, args []string) (*process.Result, error) {
		return &process.Result{Command: name, Output: output}, nil
	}
}

func exitWith(code int, output string) func(string, []string) (*process.Result, error) {
	return func(name string, args []string) (*process.Result, error) {
		cmd := name + " " + strings.Join(args, " ")
		return &process.Result{Command: cmd, Output: output, ExitCode: code},
			&process.ExitError{Command: cmd, ExitCode: code, Output: output}
	}
}

type modal struct {
	kind    string
	title   string
	message string
}

type fakePresenter struct {
	mu     sync.Mutex
	modals []modal
}

func (p *fakePresenter) record(kind, title, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modals = append(p.modals, modal{kind: kind, title: title, message: message})
}

func (p *fakePresenter) ShowInfo(title, message string)  { p.record("info", title, message) }
func (p *fakePresenter) ShowError(title, message string) { p.record("error", title, message) }
func (p *fakePresenter) ShowListing(title, text string)  { p.record("listing", title, text) }

func (p *fakePresenter) Modals() []modal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]modal(nil), p.modals...)
}

type fakeEdit struct {
	ops []string
}

func (e *fakeEdit) Undo()      { e.ops = append(e.ops, "undo") }
func (e *fakeEdit) Redo()      { e.ops = append(e.ops, "redo") }
func (e *fakeEdit) Copy()      { e.ops = append(e.ops, "copy") }
func (e *fakeEdit) Paste()     { e.ops = append(e.ops, "paste") }
func (e *fakeEdit) SelectAll() { e.ops = append(e.ops, "select-all") }

// syncHost answers pickers and prompts immediately and runs async work inline.
type syncHost struct {
	openPath string
	savePath string
	answer   string
	prompts  int
	quit     bool
}

func (h *syncHost) PickOpenPath(ext string, done func(string)) { done(h.openPath) }
func (h *syncHost) PickSavePath(ext string, done func(string)) { done(h.savePath) }
func (h *syncHost) Prompt(title, label string, done func(string)) {
	h.prompts++
	done(h.answer)
}
func (h *syncHost) Async(fn func()) { fn() }
func (h *syncHost) Quit()           { h.quit = true }

func testCommands() Commands {
	return Commands{
		Interpreter:     "python3",
		InterpreterFlag: "-c",
		PackageManager:  "pip",
		SelfPackage:     "pip",
		Extension:       ".py",
	}
}

func newTestShell(text string, runner *fakeRunner) (*Shell, *MemoryBuffer, *fakePresenter, *fakeEdit) {
	buf := NewMemoryBuffer(text)
	pres := &fakePresenter{}
	edit := &fakeEdit{}
	return NewShell(buf, edit, runner, pres, testCommands(), nil), buf, pres, edit
}
