package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"pyedit/internal/files"
)

// Host methods back editor.Host with Fyne dialogs.

func (v *View) PickOpenPath(ext string, done func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			v.logger.Error("View", err, map[string]interface{}{"dialog": "open"})
			dialog.ShowError(err, v.window)
			done("")
			return
		}
		if reader == nil {
			done("")
			return
		}

		path := reader.URI().Path()
		reader.Close()
		done(path)
	}, v.window)

	if ext != "" {
		fd.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	}
	fd.Show()
}

// PickSavePath reports the chosen path. The dialog creates the file it hands
// back, so when the shell will append the default extension the empty
// placeholder is removed.
func (v *View) PickSavePath(ext string, done func(path string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			v.logger.Error("View", err, map[string]interface{}{"dialog": "save"})
			dialog.ShowError(err, v.window)
			done("")
			return
		}
		if writer == nil {
			done("")
			return
		}

		uri := writer.URI()
		path := uri.Path()
		writer.Close()
		if files.Resolve(path, ext) != path {
			if err := storage.Delete(uri); err != nil {
				v.logger.Warning("View", "placeholder not removed", map[string]interface{}{
					"path":  path,
					"error": err.Error(),
				})
			}
		}
		done(path)
	}, v.window)

	if ext != "" {
		fd.SetFileName("untitled" + ext)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	}
	fd.Show()
}

func (v *View) Prompt(title, label string, done func(text string)) {
	input := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem(label, input)}

	dialog.ShowForm(title, "OK", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			done("")
			return
		}
		done(input.Text)
	}, v.window)
}

func (v *View) Async(fn func()) {
	go fn()
}

func (v *View) Quit() {
	v.quit()
}
