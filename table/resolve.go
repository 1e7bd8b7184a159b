package table

import "github.com/young1lin/consolegrid/display"

// Built-in defaults used when no level of the inheritance chain sets a value.
const (
	defaultPaddingLeft   = 1
	defaultPaddingRight  = 1
	defaultPaddingTop    = 0
	defaultPaddingBottom = 0

	defaultAlignment = AlignLeft
	defaultOverflow  = OverflowWrapWord
)

// resolveAlignment returns the first non-default alignment
func resolveAlignment(chain ...HorizontalAlignment) HorizontalAlignment {
	for _, a := range chain {
		if a != AlignDefault {
			return a
		}
	}
	return defaultAlignment
}

// resolveOverflow returns the first non-default overflow behavior
func resolveOverflow(chain ...OverflowBehavior) OverflowBehavior {
	for _, o := range chain {
		if o != OverflowDefault {
			return o
		}
	}
	return defaultOverflow
}

// resolveColor returns the first set color
func resolveColor(chain ...display.Color) display.Color {
	for _, c := range chain {
		if c != display.NoColor {
			return c
		}
	}
	return display.NoColor
}

// resolvedPadding is a fully resolved padding value
type resolvedPadding struct {
	left, right, top, bottom int
}

func (p resolvedPadding) horizontal() int {
	return p.left + p.right
}

// resolvePadding resolves each side independently over the chain.
// Nil entries are skipped.
func resolvePadding(chain ...*Padding) resolvedPadding {
	side := func(get func(Padding) (int, bool), def int) int {
		for _, p := range chain {
			if p == nil {
				continue
			}
			if v, ok := get(*p); ok {
				return v
			}
		}
		return def
	}
	return resolvedPadding{
		left:   side(Padding.Left, defaultPaddingLeft),
		right:  side(Padding.Right, defaultPaddingRight),
		top:    side(Padding.Top, defaultPaddingTop),
		bottom: side(Padding.Bottom, defaultPaddingBottom),
	}
}
