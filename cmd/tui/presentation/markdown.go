package presentation

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minMarkdownWidth = 20

// RenderMarkdown renders a project detail document with a glamour standard style
func RenderMarkdown(markdown, style string, width int) (string, error) {
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
