// Package commands implements the check, list and read commands. Each
// handler works against an App assembled once at startup, so command
// behavior is testable without process-level fixtures.
package commands

import (
	"github.com/lysyi3m/informant/app/cfg"
	"github.com/lysyi3m/informant/app/feed"
	"github.com/lysyi3m/informant/app/hook"
	"github.com/lysyi3m/informant/app/store"
	"github.com/lysyi3m/informant/app/ui"
)

// App carries the state a command operates on: the parsed options, the
// merged newest-first entry list, the read-state store and the
// terminal surfaces.
type App struct {
	Cfg     *cfg.Cfg
	Store   *store.Store
	Entries []feed.Entry
	UI      *ui.UI
	Hook    hook.Detector
}
