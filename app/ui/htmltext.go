package ui

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
)

// blockElements begin and end a paragraph when converting to text.
var blockElements = map[string]bool{
	"p":          true,
	"div":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"tr":         true,
	"blockquote": true,
	"pre":        true,
	"section":    true,
	"article":    true,
}

// HTMLToText converts an HTML fragment to plain text wrapped at width
// columns. Anchors render as their text only, without the link target.
// Input that does not parse is returned unmodified.
func HTMLToText(content string, width uint) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}

	var buf strings.Builder
	extractText(doc, &buf)

	paragraphs := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for i, p := range paragraphs {
		paragraphs[i] = wordwrap.WrapString(strings.TrimSpace(p), width)
	}

	return strings.Join(paragraphs, "\n")
}

func extractText(n *html.Node, buf *strings.Builder) {
	if n == nil {
		return
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "head", "meta", "link":
			return
		case "br":
			buf.WriteString("\n")
			return
		}
		if blockElements[n.Data] && buf.Len() > 0 {
			buf.WriteString("\n")
		}
	}

	if n.Type == html.TextNode {
		text := strings.Join(strings.Fields(n.Data), " ")
		if text != "" {
			if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
				buf.WriteString(" ")
			}
			buf.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		buf.WriteString("\n")
	}
}
