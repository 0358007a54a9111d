package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	bold      = color.New(color.Bold)
	errLabel  = color.New(color.FgRed)
	hookLabel = color.New(color.FgYellow, color.Bold)
)

// UI owns the terminal surfaces. Out receives normal output, Err
// user-facing failures, In the interactive prompt's answers. Width is
// swappable so tests run against a fixed column count.
type UI struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader

	Raw   bool
	Width func() int

	reader *bufio.Reader
}

func New(raw bool) *UI {
	return &UI{
		Out:   os.Stdout,
		Err:   os.Stderr,
		In:    os.Stdin,
		Raw:   raw,
		Width: terminalWidth,
	}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// ErrPrint reports a user-visible failure on the error stream.
func (u *UI) ErrPrint(format string, args ...any) {
	fmt.Fprintf(u.Err, "%s %s\n", errLabel.Sprint("ERROR:"), fmt.Sprintf(format, args...))
}

// HookMsg prints an operator-facing advisory in pacman's message style,
// used when running as a pre-transaction hook.
func (u *UI) HookMsg(msg string) {
	fmt.Fprintf(u.Out, "%s %s\n", hookLabel.Sprint("::"), msg)
}

// Println writes a line of normal output.
func (u *UI) Println(args ...any) {
	fmt.Fprintln(u.Out, args...)
}

// PromptYesNo asks question and reads one answer line, defaulting to
// yes. Only an answer starting with n declines; EOF counts as the
// default.
func (u *UI) PromptYesNo(question string) bool {
	if u.reader == nil {
		u.reader = bufio.NewReader(u.In)
	}

	fmt.Fprintf(u.Out, "%s [Y/n] ", question)
	line, err := u.reader.ReadString('\n')
	if err != nil && line == "" {
		return true
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer != "n" && answer != "no"
}
