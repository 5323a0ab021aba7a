package gui

import (
	"fyne.io/fyne/v2"

	"pyedit/internal/editor"
)

// BuildMainMenu groups actions into menus in the order they first appear.
func BuildMainMenu(actions []editor.Action) *fyne.MainMenu {
	var order []string
	items := make(map[string][]*fyne.MenuItem)

	for _, a := range actions {
		if _, seen := items[a.Menu]; !seen {
			order = append(order, a.Menu)
		}

		var item *fyne.MenuItem
		if a.Separator() {
			item = fyne.NewMenuItemSeparator()
		} else {
			item = fyne.NewMenuItem(a.Label, a.Do)
			item.IsQuit = a.Quit
		}
		items[a.Menu] = append(items[a.Menu], item)
	}

	menus := make([]*fyne.Menu, 0, len(order))
	for _, name := range order {
		menus = append(menus, fyne.NewMenu(name, items[name]...))
	}
	return fyne.NewMainMenu(menus...)
}
