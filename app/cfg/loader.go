package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawOpts struct {
	Debug   bool   `short:"d" long:"debug" description:"Print the parsed arguments and make no changes to the save file"`
	Raw     bool   `short:"r" long:"raw" description:"Do not replace any markup when printing items"`
	File    string `short:"f" long:"file" value-name:"FILE" description:"Use FILE as the save location for read items"`
	NoCache bool   `long:"no-cache" description:"Do not use the feed fetch cache"`
	Version bool   `short:"V" long:"version" description:"Show version and exit"`

	Check checkOpts `command:"check" description:"Check for unread news items"`
	List  listOpts  `command:"list" description:"Print the most recent news items"`
	Read  readOpts  `command:"read" description:"Read news items and mark them as read"`
}

type checkOpts struct{}

type listOpts struct {
	Reverse bool `long:"reverse" description:"Print items oldest to newest"`
	Unread  bool `long:"unread" description:"Only print unread items"`
}

type readOpts struct {
	All  bool `long:"all" description:"Mark every item as read without printing"`
	Args struct {
		Item string `positional-arg-name:"item" description:"Item index or full title"`
	} `positional-args:"yes"`
}

// Load parses the command-line surface from args (os.Args[1:] in
// production). A (nil, nil) return means help or the version banner
// was requested and has already been printed.
func Load(args []string) (*Cfg, error) {
	var raw rawOpts

	parser := flags.NewParser(&raw, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Println(flagsErr.Message)
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	cfg := &Cfg{
		Debug:     raw.Debug,
		Raw:       raw.Raw,
		File:      raw.File,
		NoCache:   raw.NoCache,
		UserAgent: "informant/" + GetVersion(),
		Version:   GetVersion(),
	}

	if raw.Version {
		fmt.Printf("informant v%s\n", cfg.Version)
		return nil, nil
	}

	if parser.Active == nil {
		return nil, fmt.Errorf("no command given, expected one of: check, list, read")
	}

	switch parser.Active.Name {
	case "check":
		cfg.Command = CommandCheck
	case "list":
		cfg.Command = CommandList
		cfg.Reverse = raw.List.Reverse
		cfg.Unread = raw.List.Unread
	case "read":
		cfg.Command = CommandRead
		cfg.ReadAll = raw.Read.All
		cfg.Item = raw.Read.Args.Item
		if cfg.ReadAll && cfg.Item != "" {
			return nil, fmt.Errorf("cannot combine --all with an item argument")
		}
	}

	return cfg, nil
}
