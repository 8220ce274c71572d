// Package markdown renders release changelogs for the terminal.
package markdown

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// DefaultWidth is the wrap width used when the terminal size is unknown.
const DefaultWidth = 80

// noMarginStyle removes document margins so changelogs line up with the rest of the output.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer implements ports.MarkdownRenderer with glamour.
type Renderer struct {
	renderer *glamour.TermRenderer
}

// New creates a renderer wrapping at width. Plain output carries no ANSI styling.
func New(width int, plain bool) (*Renderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if plain {
		styleOpt = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create markdown renderer")
	}
	return &Renderer{renderer: r}, nil
}

// NewForStdout sizes the renderer to the terminal on stdout.
// Output is plain when stdout is not a terminal or NO_COLOR is set.
func NewForStdout() (*Renderer, error) {
	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)

	width := DefaultWidth
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return New(width, !isTTY || os.Getenv("NO_COLOR") != "")
}

// Render transforms markdown into terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", zerr.Wrap(err, "failed to render markdown")
	}
	return out, nil
}
