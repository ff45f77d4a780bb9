// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown normalizes spacing artifacts in rendered Markdown text.
package markdown

import (
	"regexp"
	"strings"
)

var (
	// listGap matches a blank line directly before a list item marker.
	listGap = regexp.MustCompile(`\n\s*\n(\s*[-*+])`)

	// headingBefore matches a heading line missing a blank line above it.
	headingBefore = regexp.MustCompile(`\n(#{1,6}\s)`)

	// headingAfter matches a heading line followed directly by body text.
	headingAfter = regexp.MustCompile(`(#{1,6}.*)\n([^\n#])`)

	// blankRun matches three or more consecutive line breaks (allowing
	// whitespace on the blank lines).
	blankRun = regexp.MustCompile(`\n\s*\n\s*\n+`)

	// blankRunProbe detects whether any such run remains.
	blankRunProbe = regexp.MustCompile(`\n\s*\n\s*\n`)

	// degenerateTableRow matches a table separator whose cells are all
	// whitespace, e.g. "| | |". Only intra-line whitespace counts, so the
	// match never spans adjacent rows.
	degenerateTableRow = regexp.MustCompile(`\|[ \t]*\|[ \t]*\|`)
)

// Postprocess cleans up rendered Markdown: list items reattach to the
// preceding line, headings get exactly one blank line on each side, runs of
// blank lines collapse to one, degenerate table separators shrink to "| |",
// and the whole document is trimmed. The steps run in that order, once;
// blank-run collapsing loops to a fixed point because heading spacing can
// itself introduce new runs.
func Postprocess(md string) string {
	md = listGap.ReplaceAllString(md, "\n$1")

	md = headingBefore.ReplaceAllString(md, "\n\n$1")
	md = headingAfter.ReplaceAllString(md, "$1\n\n$2")

	for blankRunProbe.MatchString(md) {
		md = blankRun.ReplaceAllString(md, "\n\n")
	}

	md = degenerateTableRow.ReplaceAllString(md, "| |")

	return strings.TrimSpace(md)
}
