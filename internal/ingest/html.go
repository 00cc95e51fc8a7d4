package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLConverter handles saved profile pages. Unlike a generic article
// extractor it deliberately keeps nav/header chrome: the profile parser's
// heuristics anchor on chrome lines (the "Print" marker, the trailing
// Locations nav entry), so stripping them would lose signal.
type HTMLConverter struct{}

// blockTags are elements whose boundaries become line breaks.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"div": true, "dd": true, "dt": true, "figcaption": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

func (c *HTMLConverter) Convert(r io.Reader, filename string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template", "iframe":
				return
			case "br":
				buf.WriteString("\n")
				return
			}
			if blockTags[n.Data] {
				buf.WriteString("\n")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			buf.WriteString("\n")
		}
	}
	walk(doc)

	return buf.String(), nil
}
