package ui

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/lysyi3m/informant/app/feed"
)

// TimeFormat renders entry timestamps for display.
const TimeFormat = "2006-01-02 15:04 MST"

// bodyWidth is the wrap width for item bodies.
const bodyWidth = 85

// FormatItem renders an entry in full: title, timestamp, blank line,
// body. In raw mode the body markup is left untouched and the title is
// not bolded.
func (u *UI) FormatItem(entry feed.Entry) string {
	title := entry.Title
	body := entry.Body
	if !u.Raw {
		title = bold.Sprint(title)
		body = HTMLToText(body, bodyWidth)
	}
	return title + "\n" + entry.Timestamp.Format(TimeFormat) + "\n\n" + body
}

// PrintItem writes a fully formatted entry to normal output.
func (u *UI) PrintItem(entry feed.Entry) {
	fmt.Fprintln(u.Out, u.FormatItem(entry))
}

// FormatListLine renders one list row: "<index>: <title>" with the
// timestamp right-aligned to the terminal width and the heading
// wrapped to the remaining columns. Unread rows are bold.
func (u *UI) FormatListLine(entry feed.Entry, index int, read bool) string {
	width := u.Width()
	timestamp := entry.Timestamp.Format(TimeFormat)

	heading := fmt.Sprintf("%d: %s", index, entry.Title)
	wrapWidth := max(width-len(timestamp)-1, 20)
	lines := strings.Split(wordwrap.WrapString(heading, uint(wrapWidth)), "\n")

	padding := max(width-len([]rune(lines[0]))-len(timestamp), 1)

	head := lines[0]
	rest := lines[1:]
	if !read {
		head = bold.Sprint(head)
		for i := range rest {
			rest[i] = bold.Sprint(rest[i])
		}
	}

	out := head + strings.Repeat(" ", padding) + timestamp
	if len(rest) > 0 {
		out += "\n" + strings.Join(rest, "\n")
	}
	return out
}
