// Package display defines the sink that rendered text is written to.
//
// The table engine never reads from a display; it only issues an ordered
// sequence of Write, EndLine and Flush calls. Two implementations ship with
// the package: Buffer, which records lines in memory, and Console, which
// styles text with lipgloss and writes it to an io.Writer.
package display

import "strings"

//go:generate mockgen -destination=../internal/mocks/mock_display.go -package=mocks github.com/young1lin/consolegrid/display Display,Child

// Color is a lipgloss color specification ("1", "#ff8800", ...).
// The empty Color means "no color".
type Color string

// NoColor leaves the terminal's current color untouched.
const NoColor Color = ""

// Segment is a run of text written with a single foreground/background pair.
type Segment struct {
	Text       string
	Foreground Color
	Background Color
}

// Display is the sink a renderer writes to.
type Display interface {
	// Write writes text on the current line with optional colors.
	Write(text string, fg, bg Color) error
	// EndLine terminates the current line.
	EndLine() error
	// Flush pushes any buffered output to the underlying device.
	Flush() error
	// CreateChild returns an independent in-memory context, used for
	// rendering nested content whose lines are later replayed into the parent.
	CreateChild() Child
}

// Child is a display whose recorded lines can be read back.
type Child interface {
	Display
	Lines() [][]Segment
}

// PlainText joins the text of all segments, dropping colors.
func PlainText(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// WriteLine writes the segments of one line and terminates it.
func WriteLine(d Display, segments []Segment) error {
	for _, s := range segments {
		if err := d.Write(s.Text, s.Foreground, s.Background); err != nil {
			return err
		}
	}
	return d.EndLine()
}
