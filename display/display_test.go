package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_MergesSameColorSegments(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Write("ab", NoColor, NoColor))
	require.NoError(t, b.Write("cd", NoColor, NoColor))
	require.NoError(t, b.Write("ef", "1", NoColor))
	require.NoError(t, b.EndLine())

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, []Segment{
		{Text: "abcd"},
		{Text: "ef", Foreground: "1"},
	}, lines[0])
}

func TestBuffer_String(t *testing.T) {
	tests := []struct {
		name  string
		write func(b *Buffer)
		want  string
	}{
		{
			name:  "nothing written",
			write: func(b *Buffer) {},
			want:  "",
		},
		{
			name: "terminated lines",
			write: func(b *Buffer) {
				_ = b.Write("one", NoColor, NoColor)
				_ = b.EndLine()
				_ = b.EndLine()
			},
			want: "one\n\n",
		},
		{
			name: "pending line",
			write: func(b *Buffer) {
				_ = b.Write("one", NoColor, NoColor)
				_ = b.EndLine()
				_ = b.Write("two", "2", "3")
			},
			want: "one\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			tt.write(b)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestBuffer_LinesAreCopies(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, WriteLine(b, []Segment{{Text: "x"}}))

	lines := b.Lines()
	lines[0][0].Text = "changed"
	assert.Equal(t, []string{"x"}, b.PlainLines())
}

func TestBuffer_ChildIsIndependent(t *testing.T) {
	parent := NewBuffer()
	child := parent.CreateChild()
	require.NoError(t, WriteLine(child, []Segment{{Text: "inner"}}))

	assert.Empty(t, parent.Lines())
	require.Len(t, child.Lines(), 1)
	assert.Equal(t, "inner", PlainText(child.Lines()[0]))
}

func TestBuffer_Reset(t *testing.T) {
	b := NewBuffer()
	_ = b.Write("x", NoColor, NoColor)
	_ = b.EndLine()
	_ = b.Write("y", NoColor, NoColor)
	b.Reset()
	assert.Equal(t, "", b.String())
	assert.Empty(t, b.Lines())
}

func TestConsole_PlainWriter(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	require.NoError(t, WriteLine(c, []Segment{{Text: "+--+"}}))
	assert.Empty(t, out.String(), "output is buffered until Flush")

	require.NoError(t, c.Flush())
	assert.Equal(t, "+--+\n", out.String())
}

func TestConsole_ColorsOnlyWhenSet(t *testing.T) {
	var out bytes.Buffer
	r := lipgloss.NewRenderer(&out)
	r.SetColorProfile(termenv.ANSI256)
	c := NewConsoleWithRenderer(&out, r)

	require.NoError(t, c.Write("plain", NoColor, NoColor))
	require.NoError(t, c.Write("red", "1", NoColor))
	require.NoError(t, c.EndLine())
	require.NoError(t, c.Flush())

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "plain"))
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "red")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestConsole_ChildIsBuffer(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})
	_, ok := c.CreateChild().(*Buffer)
	assert.True(t, ok)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestConsole_FlushError(t *testing.T) {
	c := NewConsole(failingWriter{})
	require.NoError(t, c.Write("x", NoColor, NoColor))
	assert.Error(t, c.Flush())
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "", PlainText(nil))
	assert.Equal(t, "abc", PlainText([]Segment{{Text: "a", Foreground: "1"}, {Text: "bc"}}))
}
