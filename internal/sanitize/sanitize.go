// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize strips boilerplate regions from HTML documents before
// Markdown rendering. Removal is driven by declarative rule tables so the
// denylist can be inspected and extended without touching the traversal code.
package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// boilerplateTags are structural elements removed wholesale.
var boilerplateTags = []string{"nav", "footer", "header", "aside"}

// boilerplateSelectors are class and id markers for navigation, footers,
// sidebars, social widgets, ads, and cookie banners. Matching is exact
// against the element's class tokens or id, not prefix or fuzzy.
var boilerplateSelectors = []string{
	".nav",
	".navigation",
	".navbar",
	".menu",
	".footer",
	".site-footer",
	".page-footer",
	".sidebar",
	".breadcrumb",
	".breadcrumbs",
	".social",
	".share",
	".sharing",
	".advertisement",
	".ads",
	".ad",
	".cookie-notice",
	".cookie-banner",
	"#nav",
	"#navigation",
	"#navbar",
	"#menu",
	"#footer",
	"#site-footer",
	"#page-footer",
	"#sidebar",
	"#breadcrumb",
	"#breadcrumbs",
}

// removableIfEmpty are wrapper elements dropped when they hold no visible
// text and no image, line break, or horizontal rule.
var removableIfEmpty = []string{"p", "div", "span", "section", "article"}

// Clean parses markup into a best-effort DOM, removes every denylisted
// element, script/style/noscript blocks, and markup comments, then drops
// wrappers left empty by those removals. Content outside the denylist keeps
// its original text and relative order.
//
// Clean never fails: malformed markup still produces a tree, and on the
// degenerate parse error path the input is returned unchanged.
func Clean(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}

	for _, tag := range boilerplateTags {
		doc.Find(tag).Remove()
	}
	for _, sel := range boilerplateSelectors {
		doc.Find(sel).Remove()
	}

	doc.Find("script, style, noscript").Remove()

	for _, root := range doc.Nodes {
		removeComments(root)
	}

	// Emptiness is computed on residual content: stripping boilerplate can
	// turn a wrapper empty, so this pass runs after the removals above.
	removeEmptyWrappers(doc)

	out, err := doc.Html()
	if err != nil {
		return markup
	}
	return out
}

// removeComments walks the node tree and detaches every comment node.
func removeComments(n *html.Node) {
	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.CommentNode {
				comments = append(comments, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	for _, c := range comments {
		c.Parent.RemoveChild(c)
	}
}

// removeEmptyWrappers drops p/div/span/section/article elements whose
// trimmed text is empty and that contain no img, br, or hr child. Single
// pass, in rule table order.
func removeEmptyWrappers(doc *goquery.Document) {
	for _, tag := range removableIfEmpty {
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			if strings.TrimSpace(s.Text()) == "" && s.Find("img, br, hr").Length() == 0 {
				s.Remove()
			}
		})
	}
}
