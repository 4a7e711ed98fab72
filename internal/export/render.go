package export

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Render styles markdown for a terminal of the given width. Style is a
// glamour standard style name such as "dark", "light" or "notty".
func Render(markdown string, width int, style string) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
