package tui

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders assistant markdown for the transcript.
type MarkdownRenderer interface {
	Render(markdown string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour's auto-detected style.
type GlamourRenderer struct{}

// NewGlamourRenderer creates the production renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render implements MarkdownRenderer.
func (GlamourRenderer) Render(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
