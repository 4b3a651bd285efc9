package service

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"anchors/internal/core/normalize"
)

// shortcodeRe strips CMS shortcodes like [gallery ids="1,2"] before parsing
var shortcodeRe = regexp.MustCompile(`\[/?[a-zA-Z][^\[\]]*\]`)

// skipSubtrees are elements whose entire content is dropped. Headings go too,
// anchor phrases must come from running prose only
var skipSubtrees = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// CleanContent turns raw document markup into plain prose: shortcodes out,
// script/style/heading subtrees dropped, tags stripped, entities decoded,
// whitespace collapsed
func CleanContent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	raw = shortcodeRe.ReplaceAllString(raw, " ")

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		// not expected for string input, degrade to a crude tag strip
		return normalize.Collapse(stripTags(raw))
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipSubtrees[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return normalize.Collapse(b.String())
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripTags(raw string) string {
	return tagRe.ReplaceAllString(raw, " ")
}
