package table

import "errors"

// Configuration errors. They are returned, wrapped with context, at the
// point a grid is mutated incorrectly, so a grid that reaches Render is
// always valid.
var (
	ErrInvalidColumnSpan     = errors.New("column span must be at least 1")
	ErrInvalidPadding        = errors.New("padding must not be negative")
	ErrInvalidBorderTemplate = errors.New("invalid border template")
	ErrInvalidWidth          = errors.New("invalid width constraint")
	ErrNestingTooDeep        = errors.New("nested grids exceed maximum depth")
)
