package commands

import (
	"fmt"

	"github.com/lysyi3m/informant/app/feed"
)

// Check counts unread entries. Exactly one unread entry is printed in
// full and marked read; more than one yields only a summary and no
// mutation. The returned count is the process exit code, so a calling
// hook sees a non-zero status whenever news needs attention.
func Check(app *App) (int, error) {
	var unread []feed.Entry
	for _, entry := range app.Entries {
		if !app.Store.IsRead(entry) {
			unread = append(unread, entry)
		}
	}

	hooked := app.Hook.RunningUnderHook()

	switch {
	case len(unread) == 1:
		if hooked {
			app.UI.HookMsg("Stopping upgrade to print news")
		}
		app.UI.PrintItem(unread[0])
		if err := app.Store.MarkRead(unread[0]); err != nil {
			return len(unread), err
		}
		if hooked {
			app.UI.HookMsg("You can re-run your pacman command to complete the upgrade")
		}
	case len(unread) > 1:
		app.UI.Println(fmt.Sprintf("There are %d unread news items! Use informant to read them.", len(unread)))
		if hooked {
			app.UI.HookMsg("Run `informant read` before re-running your pacman command")
		}
	}

	return len(unread), nil
}
