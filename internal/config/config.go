// Package config loads render defaults for gridview from YAML or TOML files
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/table"
)

// Config holds the defaults applied to every rendered grid
type Config struct {
	Border       string        `yaml:"border" toml:"border"` // "plusminus", "single", "double", "none" or a 15/16 glyph template
	HideBorder   bool          `yaml:"hideBorder" toml:"hideBorder"`
	RowBorders   bool          `yaml:"rowBorders" toml:"rowBorders"`
	MinWidth     int           `yaml:"minWidth" toml:"minWidth"`
	MaxWidth     int           `yaml:"maxWidth" toml:"maxWidth"` // 0 means unlimited
	Alignment    string        `yaml:"alignment" toml:"alignment"`
	Overflow     string        `yaml:"overflow" toml:"overflow"`
	Padding      PaddingConfig `yaml:"padding" toml:"padding"`
	Colors       ColorConfig   `yaml:"colors" toml:"colors"`
	EmptyMessage string        `yaml:"emptyMessage" toml:"emptyMessage"`
}

// PaddingConfig sets grid-level padding. Nil sides keep the built-in default.
type PaddingConfig struct {
	Left   *int `yaml:"left" toml:"left"`
	Right  *int `yaml:"right" toml:"right"`
	Top    *int `yaml:"top" toml:"top"`
	Bottom *int `yaml:"bottom" toml:"bottom"`
}

// ColorConfig holds lipgloss color specs per region
type ColorConfig struct {
	Border string `yaml:"border" toml:"border"`
	Title  string `yaml:"title" toml:"title"`
	Header string `yaml:"header" toml:"header"`
	Text   string `yaml:"text" toml:"text"`
	Footer string `yaml:"footer" toml:"footer"`
}

// Load loads configuration with priority:
// 1. Project-level: <projectDir>/.gridview.yaml (or .yml, .toml)
// 2. User: <user config dir>/gridview/config.yaml (or .yml, .toml)
// 3. Default: built-in defaults
func Load(projectDir string) (*Config, error) {
	return LoadWithPlatform(projectDir, DefaultPlatform)
}

// LoadWithPlatform is Load with an injected platform provider
func LoadWithPlatform(projectDir string, platform PlatformProvider) (*Config, error) {
	for _, path := range candidatePaths(projectDir, platform) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFile(path)
		}
	}
	return DefaultConfig(), nil
}

// LoadFile loads one config file. The format follows the extension:
// .toml is TOML, anything else is YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Border:    "plusminus",
		Alignment: "left",
		Overflow:  "wrap-word",
	}
}

// validate rejects values that cannot be applied. Unknown enumerations
// fall back to their defaults.
func (c *Config) validate() error {
	if _, err := c.borderTemplate(); err != nil {
		c.Border = "plusminus"
	}
	if _, err := table.ParseAlignment(c.Alignment); err != nil {
		c.Alignment = "left"
	}
	if _, err := table.ParseOverflow(c.Overflow); err != nil {
		c.Overflow = "wrap-word"
	}

	if c.MinWidth < 0 || c.MaxWidth < 0 {
		return fmt.Errorf("widths must not be negative: %w", table.ErrInvalidWidth)
	}
	if c.MaxWidth > 0 && c.MinWidth > c.MaxWidth {
		return fmt.Errorf("minWidth %d exceeds maxWidth %d: %w", c.MinWidth, c.MaxWidth, table.ErrInvalidWidth)
	}

	for name, v := range map[string]*int{
		"left": c.Padding.Left, "right": c.Padding.Right,
		"top": c.Padding.Top, "bottom": c.Padding.Bottom,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("padding %s is %d: %w", name, *v, table.ErrInvalidPadding)
		}
	}
	return nil
}

// borderTemplate accepts a preset name or a literal glyph template
func (c *Config) borderTemplate() (table.BorderTemplate, error) {
	if b, err := table.BorderTemplateByName(c.Border); err == nil {
		return b, nil
	}
	return table.NewBorderTemplate(c.Border)
}

// Apply fills in the properties g has not set itself. A grid border, a
// width limit, modes and colors already chosen by a document are kept.
func (c *Config) Apply(g *table.Grid) error {
	border, err := c.borderTemplate()
	if err != nil {
		return err
	}
	if g.Border.IsZero() {
		g.Border = border
	}
	g.HideBorder = g.HideBorder || c.HideBorder
	g.DisplayBorderBetweenRows = g.DisplayBorderBetweenRows || c.RowBorders

	if g.MinWidth() == 0 && g.MaxWidth() == 0 {
		if err := g.SetMinWidth(c.MinWidth); err != nil {
			return err
		}
		if err := g.SetMaxWidth(c.MaxWidth); err != nil {
			return err
		}
	}

	if g.Alignment == table.AlignDefault {
		if g.Alignment, err = table.ParseAlignment(c.Alignment); err != nil {
			return err
		}
	}
	if g.Overflow == table.OverflowDefault {
		if g.Overflow, err = table.ParseOverflow(c.Overflow); err != nil {
			return err
		}
	}

	for _, side := range []struct {
		v   *int
		set func(int) error
	}{
		{c.Padding.Left, g.Padding.SetLeft},
		{c.Padding.Right, g.Padding.SetRight},
		{c.Padding.Top, g.Padding.SetTop},
		{c.Padding.Bottom, g.Padding.SetBottom},
	} {
		if side.v == nil {
			continue
		}
		if err := side.set(*side.v); err != nil {
			return err
		}
	}

	setColor(&g.BorderForeground, c.Colors.Border)
	setColor(&g.ForegroundColor, c.Colors.Text)
	if g.Title != nil {
		setColor(&g.Title.ForegroundColor, c.Colors.Title)
	}
	if g.HeaderRow != nil {
		setColor(&g.HeaderRow.ForegroundColor, c.Colors.Header)
	}
	if g.Footer != nil {
		setColor(&g.Footer.ForegroundColor, c.Colors.Footer)
	}

	if g.EmptyMessage.IsEmpty() && c.EmptyMessage != "" {
		g.EmptyMessage = table.NewMultilineText(c.EmptyMessage)
	}
	return nil
}

func setColor(dst *display.Color, spec string) {
	if *dst == display.NoColor && spec != "" {
		*dst = display.Color(spec)
	}
}
