package display

import "strings"

// Buffer records written segments line by line in memory.
type Buffer struct {
	lines   [][]Segment
	current []Segment
	pending bool
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write appends a segment to the current line
func (b *Buffer) Write(text string, fg, bg Color) error {
	b.pending = true
	if text == "" {
		return nil
	}
	// Merge with the previous segment when colors match
	if n := len(b.current); n > 0 {
		last := &b.current[n-1]
		if last.Foreground == fg && last.Background == bg {
			last.Text += text
			return nil
		}
	}
	b.current = append(b.current, Segment{Text: text, Foreground: fg, Background: bg})
	return nil
}

// EndLine closes the current line
func (b *Buffer) EndLine() error {
	b.lines = append(b.lines, b.current)
	b.current = nil
	b.pending = false
	return nil
}

// Flush is a no-op for in-memory buffers
func (b *Buffer) Flush() error {
	return nil
}

// CreateChild returns a fresh buffer
func (b *Buffer) CreateChild() Child {
	return NewBuffer()
}

// Lines returns the completed lines. The unterminated line, if any, is not included.
func (b *Buffer) Lines() [][]Segment {
	out := make([][]Segment, len(b.lines))
	for i, line := range b.lines {
		out[i] = append([]Segment(nil), line...)
	}
	return out
}

// PlainLines returns the completed lines without color information
func (b *Buffer) PlainLines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = PlainText(line)
	}
	return out
}

// String returns every completed line followed by a newline, plus any
// pending text of the unterminated line.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(PlainText(line))
		sb.WriteByte('\n')
	}
	if b.pending {
		sb.WriteString(PlainText(b.current))
	}
	return sb.String()
}

// Reset discards all recorded output
func (b *Buffer) Reset() {
	b.lines = nil
	b.current = nil
	b.pending = false
}
