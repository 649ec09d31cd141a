package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// renderer caches one glamour renderer per width and style pair.
var renderer struct {
	sync.Mutex
	r     *glamour.TermRenderer
	width int
	style string
}

func markdownRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	renderer.Lock()
	defer renderer.Unlock()
	if renderer.r != nil && renderer.width == width && renderer.style == style {
		return renderer.r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderer.r, renderer.width, renderer.style = r, width, style
	return r, nil
}

// RenderMarkdownWithStyle renders journal content using the given glamour
// style. Returns the original content if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := markdownRenderer(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderMarkdown renders content with the "dark" style.
func RenderMarkdown(content string, width int) string {
	return RenderMarkdownWithStyle(content, width, "dark")
}
