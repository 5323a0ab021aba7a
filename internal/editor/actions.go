package editor

const (
	FileMenu = "File"
	RunMenu  = "Run"
	EditMenu = "Edit"
)

// Host supplies the interactive pieces an action needs before it can call into
// the shell: pickers, the input prompt and a way to leave the UI goroutine.
// Callbacks receive "" when the user cancels.
type Host interface {
	PickOpenPath(ext string, done func(path string))
	PickSavePath(ext string, done func(path string))
	Prompt(title, label string, done func(text string))
	Async(fn func())
	Quit()
}

// Action is one menu entry. A zero Do marks a separator.
type Action struct {
	Menu  string
	Label string
	Quit  bool
	Do    func()
}

func (a Action) Separator() bool {
	return a.Do == nil
}

// Actions builds the menu table in display order. Each closure captures only
// the shell and the host.
func (s *Shell) Actions(host Host) []Action {
	ext := s.commands.Extension

	return []Action{
		{Menu: FileMenu, Label: "New", Do: s.New},
		{Menu: FileMenu, Label: "Open", Do: func() {
			host.PickOpenPath(ext, func(path string) { _ = s.Open(path) })
		}},
		{Menu: FileMenu, Label: "Save", Do: func() {
			host.PickSavePath(ext, func(path string) { _, _ = s.Save(path) })
		}},
		{Menu: FileMenu},
		{Menu: FileMenu, Label: "Exit", Quit: true, Do: host.Quit},

		{Menu: RunMenu, Label: "Run", Do: func() {
			src := s.buffer.Text()
			host.Async(func() { _ = s.RunSource(s.ctx, src) })
		}},
		{Menu: RunMenu, Label: "Install Framework", Do: func() {
			host.Prompt("Install Framework", "Enter framework name:", func(name string) {
				if name == "" {
					return
				}
				host.Async(func() { _ = s.InstallFramework(s.ctx, name) })
			})
		}},
		{Menu: RunMenu, Label: "Installed Frameworks", Do: func() {
			host.Async(func() { _ = s.InstalledFrameworks(s.ctx) })
		}},
		{Menu: RunMenu, Label: "Update Pip", Do: func() {
			host.Async(func() { _ = s.UpdatePackageManager(s.ctx) })
		}},

		{Menu: EditMenu, Label: "Undo", Do: s.Undo},
		{Menu: EditMenu, Label: "Redo", Do: s.Redo},
		{Menu: EditMenu},
		{Menu: EditMenu, Label: "Copy", Do: s.Copy},
		{Menu: EditMenu, Label: "Paste", Do: s.Paste},
		{Menu: EditMenu, Label: "Select All", Do: s.SelectAll},
	}
}

// Find returns the action labelled label in menu.
func Find(actions []Action, menu, label string) (Action, bool) {
	for _, a := range actions {
		if a.Menu == menu && a.Label == label {
			return a, true
		}
	}
	return Action{}, false
}
