// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render wraps the external HTML-to-Markdown renderer behind a small
// interface so the pipeline can swap implementations (and tests can inject
// fakes) without changing callers.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Renderer turns sanitized HTML into Markdown text. The Markdown dialect is
// the renderer's choice; callers only rely on UTF-8 text out.
type Renderer interface {
	// Render converts well-formed or best-effort-parsed HTML to Markdown.
	Render(html string) (string, error)
}

// CommonmarkRenderer converts HTML using the html-to-markdown library.
type CommonmarkRenderer struct{}

// New creates a CommonmarkRenderer.
func New() *CommonmarkRenderer {
	return &CommonmarkRenderer{}
}

// Render converts an HTML document into Markdown.
func (r *CommonmarkRenderer) Render(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}
