package display

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled text to a terminal (or any io.Writer).
// Colors are rendered through a lipgloss renderer bound to the writer, so
// output degrades to plain text when the writer is not a color terminal.
type Console struct {
	w        *bufio.Writer
	renderer *lipgloss.Renderer
}

// NewConsole creates a console display writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{
		w:        bufio.NewWriter(w),
		renderer: lipgloss.NewRenderer(w),
	}
}

// NewConsoleWithRenderer creates a console display with an explicit lipgloss
// renderer, e.g. one with a forced color profile.
func NewConsoleWithRenderer(w io.Writer, r *lipgloss.Renderer) *Console {
	return &Console{
		w:        bufio.NewWriter(w),
		renderer: r,
	}
}

// Write writes text with optional colors
func (c *Console) Write(text string, fg, bg Color) error {
	if text == "" {
		return nil
	}
	if fg == NoColor && bg == NoColor {
		_, err := c.w.WriteString(text)
		return err
	}

	style := c.renderer.NewStyle()
	if fg != NoColor {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != NoColor {
		style = style.Background(lipgloss.Color(bg))
	}
	_, err := c.w.WriteString(style.Render(text))
	return err
}

// EndLine writes a newline
func (c *Console) EndLine() error {
	return c.w.WriteByte('\n')
}

// Flush flushes buffered output to the writer
func (c *Console) Flush() error {
	return c.w.Flush()
}

// CreateChild returns an in-memory buffer whose lines can be replayed here
func (c *Console) CreateChild() Child {
	return NewBuffer()
}
