// Package document reads declarative grid documents written in YAML, TOML
// or JSON and builds table.Grid values from them.
//
// A cell is either a plain scalar or an object:
//
//	rows:
//	  - [Alice, 42]
//	  - cells:
//	      - {text: "spans two", span: 2, align: center}
//	    borders: {top: true, bottom: true}
//
// Nested grids are written as a cell's "grid" key and share the document
// schema, minus the version.
package document

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is the document schema version written by this package
const CurrentVersion = "1.0.0"

// SupportedVersions is the range of schema versions Parse accepts
const SupportedVersions = ">= 1.0.0, < 2.0.0"

var (
	ErrInvalidVersion     = errors.New("invalid document version")
	ErrUnsupportedVersion = errors.New("unsupported document version")
	ErrUnknownFormat      = errors.New("unknown document format")
)

// Document is the root of a grid document
type Document struct {
	Version string `yaml:"version" toml:"version" json:"version"`

	Title  string `yaml:"title" toml:"title" json:"title"`
	Footer string `yaml:"footer" toml:"footer" json:"footer"`

	Border      string `yaml:"border" toml:"border" json:"border"`
	HideBorder  bool   `yaml:"hideBorder" toml:"hideBorder" json:"hideBorder"`
	RowBorders  bool   `yaml:"rowBorders" toml:"rowBorders" json:"rowBorders"`
	BorderColor string `yaml:"borderColor" toml:"borderColor" json:"borderColor"`

	MinWidth int `yaml:"minWidth" toml:"minWidth" json:"minWidth"`
	MaxWidth int `yaml:"maxWidth" toml:"maxWidth" json:"maxWidth"`

	Align      string   `yaml:"align" toml:"align" json:"align"`
	Overflow   string   `yaml:"overflow" toml:"overflow" json:"overflow"`
	Padding    *Padding `yaml:"padding" toml:"padding" json:"padding"`
	Foreground string   `yaml:"fg" toml:"fg" json:"fg"`
	Background string   `yaml:"bg" toml:"bg" json:"bg"`

	EmptyMessage string `yaml:"emptyMessage" toml:"emptyMessage" json:"emptyMessage"`
	HideHeader   bool   `yaml:"hideHeader" toml:"hideHeader" json:"hideHeader"`

	Columns []Column `yaml:"columns" toml:"columns" json:"columns"`
	Rows    []Row    `yaml:"rows" toml:"rows" json:"rows"`
}

// Column describes one logical column
type Column struct {
	Header     string   `yaml:"header" toml:"header" json:"header"`
	Align      string   `yaml:"align" toml:"align" json:"align"`
	Overflow   string   `yaml:"overflow" toml:"overflow" json:"overflow"`
	MinWidth   int      `yaml:"minWidth" toml:"minWidth" json:"minWidth"`
	MaxWidth   int      `yaml:"maxWidth" toml:"maxWidth" json:"maxWidth"`
	Padding    *Padding `yaml:"padding" toml:"padding" json:"padding"`
	Foreground string   `yaml:"fg" toml:"fg" json:"fg"`
	Background string   `yaml:"bg" toml:"bg" json:"bg"`
}

// Padding sets some or all sides. Nil sides inherit.
type Padding struct {
	Left   *int `yaml:"left" toml:"left" json:"left"`
	Right  *int `yaml:"right" toml:"right" json:"right"`
	Top    *int `yaml:"top" toml:"top" json:"top"`
	Bottom *int `yaml:"bottom" toml:"bottom" json:"bottom"`
}

// Borders forces horizontal borders around a row on or off
type Borders struct {
	Left   bool `yaml:"left" toml:"left" json:"left"`
	Top    bool `yaml:"top" toml:"top" json:"top"`
	Right  bool `yaml:"right" toml:"right" json:"right"`
	Bottom bool `yaml:"bottom" toml:"bottom" json:"bottom"`
}

// Row is a list of cells, optionally with row-level defaults.
// Written as a plain list it only carries cells.
type Row struct {
	Cells      []Cell   `yaml:"cells" toml:"cells" json:"cells"`
	Align      string   `yaml:"align" toml:"align" json:"align"`
	Overflow   string   `yaml:"overflow" toml:"overflow" json:"overflow"`
	Padding    *Padding `yaml:"padding" toml:"padding" json:"padding"`
	Foreground string   `yaml:"fg" toml:"fg" json:"fg"`
	Background string   `yaml:"bg" toml:"bg" json:"bg"`
	Hidden     bool     `yaml:"hidden" toml:"hidden" json:"hidden"`
	Borders    *Borders `yaml:"borders" toml:"borders" json:"borders"`
}

// Cell is one cell. Written as a scalar it only carries text.
type Cell struct {
	Text       string    `yaml:"text" toml:"text" json:"text"`
	Default    string    `yaml:"default" toml:"default" json:"default"`
	Span       int       `yaml:"span" toml:"span" json:"span"`
	Align      string    `yaml:"align" toml:"align" json:"align"`
	Overflow   string    `yaml:"overflow" toml:"overflow" json:"overflow"`
	Padding    *Padding  `yaml:"padding" toml:"padding" json:"padding"`
	Foreground string    `yaml:"fg" toml:"fg" json:"fg"`
	Background string    `yaml:"bg" toml:"bg" json:"bg"`
	Grid       *Document `yaml:"grid" toml:"grid" json:"grid"`
}

// CheckVersion verifies the document version is in SupportedVersions.
// An empty version is read as CurrentVersion.
func (d *Document) CheckVersion() error {
	raw := d.Version
	if raw == "" {
		raw = CurrentVersion
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidVersion, raw, err)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("failed to parse version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w %s: need %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}
