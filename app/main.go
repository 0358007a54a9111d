package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lysyi3m/informant/app/cfg"
	"github.com/lysyi3m/informant/app/commands"
	"github.com/lysyi3m/informant/app/config"
	"github.com/lysyi3m/informant/app/feed"
	"github.com/lysyi3m/informant/app/hook"
	"github.com/lysyi3m/informant/app/store"
	"github.com/lysyi3m/informant/app/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		ui.New(false).ErrPrint("%v", err)
		return 1
	}
	if appCfg == nil {
		// Help or version was printed
		return 0
	}

	setupLogging(appCfg.Debug)
	slog.Debug("Parsed arguments",
		"command", appCfg.Command,
		"debug", appCfg.Debug,
		"raw", appCfg.Raw,
		"file", appCfg.File,
		"no_cache", appCfg.NoCache,
		"reverse", appCfg.Reverse,
		"unread", appCfg.Unread,
		"read_all", appCfg.ReadAll,
		"item", appCfg.Item)

	u := ui.New(appCfg.Raw)

	feedConfig, err := config.NewLoader(config.DefaultDirs()...).Load()
	if err != nil {
		u.ErrPrint("%v", err)
		return 1
	}

	savePath := appCfg.File
	if savePath == "" {
		savePath = store.DefaultPath
	}
	st := store.Load(savePath, appCfg.Debug)

	ctx := context.Background()
	fetcher := feed.NewFetcher(appCfg.UserAgent, appCfg.NoCache)

	lists := make([][]feed.Entry, 0, len(feedConfig.Feeds))
	for _, source := range feedConfig.Feeds {
		entries, err := fetcher.Fetch(ctx, source, st.Cache(source.URL))
		if err != nil {
			u.ErrPrint("failed to fetch %s: %v", source.URL, err)
			return 1
		}
		lists = append(lists, entries)
	}

	// Persist refreshed fetch caches even when no entry gets marked
	// read, so etags and max-age survive read-only commands. Failure
	// here only costs a revalidation next run.
	if err := st.Save(); err != nil {
		slog.Debug("Could not persist fetch cache", "error", err)
	}

	app := &commands.App{
		Cfg:     appCfg,
		Store:   st,
		Entries: feed.Merge(lists...),
		UI:      u,
		Hook:    hook.New(),
	}

	switch appCfg.Command {
	case cfg.CommandCheck:
		count, err := commands.Check(app)
		if err != nil {
			u.ErrPrint("%v", err)
			return exitCode(err)
		}
		return count
	case cfg.CommandList:
		if err := commands.List(app); err != nil {
			u.ErrPrint("%v", err)
			return exitCode(err)
		}
	case cfg.CommandRead:
		if err := commands.Read(app); err != nil {
			u.ErrPrint("%v", err)
			return exitCode(err)
		}
	}

	return 0
}

// exitCode distinguishes the save-permission failure from ordinary
// errors: the hook contract reserves 255 for it.
func exitCode(err error) int {
	if errors.Is(err, fs.ErrPermission) {
		return 255
	}
	return 1
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
