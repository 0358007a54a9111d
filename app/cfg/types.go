package cfg

// Command identifies the subcommand selected on the command line.
type Command string

const (
	CommandCheck Command = "check"
	CommandList  Command = "list"
	CommandRead  Command = "read"
)

type Cfg struct {
	Command Command

	// Global options
	Debug   bool
	Raw     bool
	File    string
	NoCache bool

	// 'list' options
	Reverse bool
	Unread  bool

	// 'read' options and argument
	ReadAll bool
	Item    string

	// Application metadata
	UserAgent string
	Version   string
}
