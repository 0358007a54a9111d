package commands

import (
	"slices"

	"github.com/lysyi3m/informant/app/feed"
)

// List prints one line per surviving entry, numbering sequentially
// from zero over the filtered set, so positions shift when --unread
// hides read entries. Never mutates read state.
func List(app *App) error {
	entries := app.Entries
	if app.Cfg.Reverse {
		entries = slices.Clone(app.Entries)
		slices.Reverse(entries)
	}

	index := 0
	for _, entry := range entries {
		read := app.Store.IsRead(entry)
		if app.Cfg.Unread && read {
			continue
		}
		app.UI.Println(app.UI.FormatListLine(entry, index, read))
		index++
	}

	return nil
}

// unreadOldestFirst collects the unread entries of a newest-first list
// in reading order.
func unreadOldestFirst(app *App) []feed.Entry {
	var unread []feed.Entry
	for _, entry := range app.Entries {
		if !app.Store.IsRead(entry) {
			unread = append(unread, entry)
		}
	}
	slices.Reverse(unread)
	return unread
}
