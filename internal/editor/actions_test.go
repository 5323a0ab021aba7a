package editor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTableLayout(t *testing.T) {
	s, _, _, _ := newTestShell("", &fakeRunner{})
	actions := s.Actions(&syncHost{})

	labels := map[string][]string{}
	for _, a := range actions {
		label := a.Label
		if a.Separator() {
			label = "-"
		}
		labels[a.Menu] = append(labels[a.Menu], label)
	}

	assert.Equal(t, []string{"New", "Open", "Save", "-", "Exit"}, labels[FileMenu])
	assert.Equal(t, []string{"Run", "Install Framework", "Installed Frameworks", "Update Pip"}, labels[RunMenu])
	assert.Equal(t, []string{"Undo", "Redo", "-", "Copy", "Paste", "Select All"}, labels[EditMenu])

	exit, ok := Find(actions, FileMenu, "Exit")
	require.True(t, ok)
	assert.True(t, exit.Quit)
}

func TestOpenSaveActions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.py")
	host := &syncHost{openPath: path, savePath: path}
	s, buf, _, _ := newTestShell("print('saved')\n", &fakeRunner{})
	actions := s.Actions(host)

	save, _ := Find(actions, FileMenu, "Save")
	save.Do()

	newAction, _ := Find(actions, FileMenu, "New")
	newAction.Do()
	assert.Empty(t, buf.Text())

	open, _ := Find(actions, FileMenu, "Open")
	open.Do()
	assert.Equal(t, "print('saved')\n", buf.Text())
}

func TestCancelledPickersAreNoops(t *testing.T) {
	host := &syncHost{}
	s, buf, pres, _ := newTestShell("untouched", &fakeRunner{})
	actions := s.Actions(host)

	open, _ := Find(actions, FileMenu, "Open")
	open.Do()
	save, _ := Find(actions, FileMenu, "Save")
	save.Do()

	assert.Equal(t, "untouched", buf.Text())
	assert.Empty(t, pres.Modals())
}

func TestRunActionSnapshotsBuffer(t *testing.T) {
	runner := &fakeRunner{result: succeed("X\n")}
	s, _, pres, _ := newTestShell("print('X')", runner)

	run, _ := Find(s.Actions(&syncHost{}), RunMenu, "Run")
	run.Do()

	require.Len(t, runner.Calls(), 1)
	assert.Equal(t, "print('X')", runner.Calls()[0].args[1])
	assert.Equal(t, "info", pres.Modals()[0].kind)
	assert.Contains(t, pres.Modals()[0].message, "X")
}

func TestInstallActionCancelledPrompt(t *testing.T) {
	runner := &fakeRunner{}
	host := &syncHost{answer: ""}
	s, _, pres, _ := newTestShell("", runner)

	install, _ := Find(s.Actions(host), RunMenu, "Install Framework")
	install.Do()

	assert.Equal(t, 1, host.prompts)
	assert.Empty(t, runner.Calls())
	assert.Empty(t, pres.Modals())
}

func TestInstallActionWithName(t *testing.T) {
	runner := &fakeRunner{}
	host := &syncHost{answer: "flask"}
	s, _, _, _ := newTestShell("", runner)

	install, _ := Find(s.Actions(host), RunMenu, "Install Framework")
	install.Do()

	assert.Equal(t, []call{{name: "pip", args: []string{"install", "flask"}}}, runner.Calls())
}

func TestInstalledFrameworksActionOpensOneListing(t *testing.T) {
	runner := &fakeRunner{result: succeed("pip 24.0\n")}
	s, _, pres, _ := newTestShell("", runner)

	list, _ := Find(s.Actions(&syncHost{}), RunMenu, "Installed Frameworks")
	list.Do()

	listings := 0
	for _, m := range pres.Modals() {
		if m.kind == "listing" {
			listings++
			assert.Equal(t, "pip 24.0\n", m.message)
		}
	}
	assert.Equal(t, 1, listings)
}

func TestEditAndExitActions(t *testing.T) {
	host := &syncHost{}
	s, _, _, edit := newTestShell("", &fakeRunner{})
	actions := s.Actions(host)

	for _, label := range []string{"Undo", "Redo", "Copy", "Paste", "Select All"} {
		a, ok := Find(actions, EditMenu, label)
		require.True(t, ok, label)
		a.Do()
	}
	assert.Equal(t, []string{"undo", "redo", "copy", "paste", "select-all"}, edit.ops)

	exit, _ := Find(actions, FileMenu, "Exit")
	exit.Do()
	assert.True(t, host.quit)
}
