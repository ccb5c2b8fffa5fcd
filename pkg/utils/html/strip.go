// ABOUTME: HTML utilities for turning remote HTML fragments into plain text
// ABOUTME: Used for recipe summaries and instructions, which arrive as markup

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes HTML tags and decodes entities from a fragment.
// Script and style content is dropped. Whitespace runs collapse to one space.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseSpace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}
	doc.Find("script, style").Remove()

	// Block elements would otherwise glue neighbouring words together
	doc.Find("br, p, li, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return collapseSpace(doc.Text())
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
