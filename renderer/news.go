package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"famstock"
)

// NewsMarkdown renders the headline list as a bullet list of links.
func NewsMarkdown(query string, items []famstock.NewsItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("News: %s", query))
	if len(items) == 0 {
		doc.PlainText("No headlines available.")
		return doc.String()
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		line := fmt.Sprintf("[%s](%s)", it.Title, it.Link)
		meta := it.Source
		if it.Published != "" {
			if meta != "" {
				meta += ", "
			}
			meta += it.Published
		}
		if meta != "" {
			line += fmt.Sprintf(" (%s)", meta)
		}
		lines = append(lines, line)
	}
	doc.BulletList(lines...)

	return doc.String()
}
