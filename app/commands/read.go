package commands

import (
	"fmt"
	"strconv"

	"github.com/lysyi3m/informant/app/feed"
)

// Read dispatches the three read modes: mark everything with --all,
// read one entry by index or title, or walk the unread entries
// oldest-first with a continue prompt between items.
func Read(app *App) error {
	switch {
	case app.Cfg.ReadAll:
		for _, entry := range app.Entries {
			if err := app.Store.MarkRead(entry); err != nil {
				return err
			}
		}
		return nil
	case app.Cfg.Item != "":
		entry, err := resolveItem(app.Entries, app.Cfg.Item)
		if err != nil {
			return err
		}
		app.UI.PrintItem(entry)
		return app.Store.MarkRead(entry)
	default:
		return readInteractive(app)
	}
}

// resolveItem treats a selector that parses as an integer as a
// position in the newest-first ordering, anything else as an exact
// title.
func resolveItem(entries []feed.Entry, selector string) (feed.Entry, error) {
	if index, err := strconv.Atoi(selector); err == nil {
		if index < 0 || index >= len(entries) {
			return feed.Entry{}, fmt.Errorf("item not found: no item at index %d", index)
		}
		return entries[index], nil
	}

	for _, entry := range entries {
		if entry.Title == selector {
			return entry, nil
		}
	}
	return feed.Entry{}, fmt.Errorf("item not found: %q", selector)
}

func readInteractive(app *App) error {
	unread := unreadOldestFirst(app)

	for i, entry := range unread {
		app.UI.PrintItem(entry)
		if err := app.Store.MarkRead(entry); err != nil {
			return err
		}

		if i < len(unread)-1 {
			if !app.UI.PromptYesNo("Read next item?") {
				break
			}
		} else {
			app.UI.Println("No more unread items")
		}
	}

	return nil
}
