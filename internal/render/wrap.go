package render

import (
	"strings"
	"unicode"
)

// Ellipsis is appended by the "with ellipsis" cut variants
const Ellipsis = "…"

// CutChar cuts s to width display columns, possibly mid-word. With ellipsis
// the last column of a cut line holds Ellipsis.
func CutChar(s string, width int, ellipsis bool) string {
	if Measure(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	if ellipsis {
		return cond.Truncate(s, width, Ellipsis)
	}
	return cond.Truncate(s, width, "")
}

// CutWord cuts s at the last whitespace boundary that fits in width.
// When no boundary fits it falls back to CutChar.
func CutWord(s string, width int, ellipsis bool) string {
	if Measure(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}

	budget := width
	if ellipsis {
		budget--
	}
	if budget <= 0 {
		return Ellipsis
	}

	cut := -1
	w := 0
	for i, r := range s {
		if unicode.IsSpace(r) && w <= budget {
			cut = i
		}
		rw := cond.RuneWidth(r)
		if w+rw > budget {
			break
		}
		w += rw
	}

	kept := ""
	if cut > 0 {
		kept = strings.TrimRightFunc(s[:cut], unicode.IsSpace)
	}
	if kept == "" {
		return CutChar(s, width, ellipsis)
	}
	if ellipsis {
		return kept + Ellipsis
	}
	return kept
}

// WrapChar hard-wraps s into chunks of at most width display columns.
// A rune wider than width gets a chunk of its own.
func WrapChar(s string, width int) []string {
	if width <= 0 || Measure(s) <= width {
		return []string{s}
	}

	var lines []string
	var sb strings.Builder
	w := 0
	for _, r := range s {
		rw := cond.RuneWidth(r)
		if w+rw > width && w > 0 {
			lines = append(lines, sb.String())
			sb.Reset()
			w = 0
		}
		sb.WriteRune(r)
		w += rw
	}
	if sb.Len() > 0 {
		lines = append(lines, sb.String())
	}
	return lines
}

// WrapWord greedily wraps s at whitespace so that no line exceeds width.
// Words are never split unless a single word is wider than width, in which
// case that word is char-wrapped. Runs of whitespace between words collapse
// to one space on wrapped output.
func WrapWord(s string, width int) []string {
	if width <= 0 || Measure(s) <= width {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	currentWidth := 0

	for _, word := range words {
		ww := Measure(word)

		if currentWidth > 0 && currentWidth+1+ww <= width {
			current += " " + word
			currentWidth += 1 + ww
			continue
		}

		if currentWidth > 0 {
			lines = append(lines, current)
			current, currentWidth = "", 0
		}

		if ww <= width {
			current, currentWidth = word, ww
			continue
		}

		// Word longer than a whole line: char-wrap it and keep the tail open
		chunks := WrapChar(word, width)
		lines = append(lines, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
		currentWidth = Measure(current)
	}

	if currentWidth > 0 {
		lines = append(lines, current)
	}
	return lines
}
