package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"pyedit/internal/editor"
	"pyedit/internal/logger"
)

var (
	_ editor.Buffer      = (*View)(nil)
	_ editor.EditControl = (*View)(nil)
	_ editor.Presenter   = (*View)(nil)
	_ editor.Host        = (*View)(nil)
)

// View owns the main window and its single text pane. It implements
// editor.Buffer, editor.EditControl and editor.Presenter.
type View struct {
	app    fyne.App
	window fyne.Window
	entry  *widget.Entry
	logger logger.Logger

	listingSize fyne.Size
	quit        func()
}

func NewView(app fyne.App, window fyne.Window, listingSize fyne.Size, log logger.Logger) *View {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord

	v := &View{
		app:         app,
		window:      window,
		entry:       entry,
		logger:      log,
		listingSize: listingSize,
		quit:        app.Quit,
	}

	window.SetContent(entry)
	return v
}

// SetQuitHandler replaces the default app.Quit used by File > Exit.
func (v *View) SetQuitHandler(fn func()) {
	v.quit = fn
}

func (v *View) SetMainMenu(menu *fyne.MainMenu) {
	v.window.SetMainMenu(menu)
}

func (v *View) Window() fyne.Window {
	return v.window
}

func (v *View) Show() {
	v.window.Canvas().Focus(v.entry)
	v.window.Show()
}

// Buffer

func (v *View) Text() string {
	return v.entry.Text
}

func (v *View) SetText(text string) {
	v.entry.SetText(text)
}

// EditControl

func (v *View) Undo() {
	v.shortcut(&fyne.ShortcutUndo{})
}

func (v *View) Redo() {
	v.shortcut(&fyne.ShortcutRedo{})
}

func (v *View) Copy() {
	v.shortcut(&fyne.ShortcutCopy{Clipboard: v.window.Clipboard()})
}

func (v *View) Paste() {
	v.shortcut(&fyne.ShortcutPaste{Clipboard: v.window.Clipboard()})
}

func (v *View) SelectAll() {
	v.shortcut(&fyne.ShortcutSelectAll{})
}

func (v *View) shortcut(s fyne.Shortcut) {
	v.window.Canvas().Focus(v.entry)
	v.entry.TypedShortcut(s)
}

// Presenter. Safe to call from any goroutine.

func (v *View) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, v.window)
	})
}

func (v *View) ShowError(title, message string) {
	v.logger.Debug("View", "error dialog", map[string]interface{}{
		"title": title,
	})
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), v.window)
	})
}

func (v *View) ShowListing(title, text string) {
	fyne.Do(func() {
		v.openListing(title, text)
	})
}

// openListing shows text in a new fixed-size window. The pane stays editable;
// nothing reads it back.
func (v *View) openListing(title, text string) fyne.Window {
	w := v.app.NewWindow(title)
	w.Resize(v.listingSize)
	w.SetFixedSize(true)

	pane := widget.NewMultiLineEntry()
	pane.Wrapping = fyne.TextWrapWord
	pane.SetText(text)

	w.SetContent(pane)
	w.Show()

	v.logger.Debug("View", "listing window opened", map[string]interface{}{
		"title": title,
		"bytes": len(text),
	})
	return w
}
