package feed

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses raw RSS/Atom data into entries. Items carrying neither a
// published nor an updated date are dropped: without a timestamp an
// entry has no identity and no position in the merged ordering.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entry, ok := p.normalizeItem(item)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) (Entry, bool) {
	entry := Entry{
		Title: item.Title,
		Body:  cmp.Or(item.Content, item.Description),
	}

	switch {
	case item.PublishedParsed != nil:
		entry.Timestamp = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		entry.Timestamp = *item.UpdatedParsed
	default:
		return Entry{}, false
	}

	return entry, true
}
