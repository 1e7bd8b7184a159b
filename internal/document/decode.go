package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document serialization
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return "yaml"
	}
}

// ParseFormat parses "yaml", "yml", "toml" or "json"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatYAML, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load reads and parses a document file
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document and checks its version
func Parse(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), doc)
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	default:
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", format, err)
	}

	if err := doc.CheckVersion(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Alias types drop the custom unmarshalers so the object forms decode
// field by field.
type (
	rowFields  Row
	cellFields Cell
)

// UnmarshalYAML accepts a sequence of cells or a row object
func (r *Row) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		*r = Row{}
		return value.Decode(&r.Cells)
	}
	var fields rowFields
	if err := value.Decode(&fields); err != nil {
		return err
	}
	*r = Row(fields)
	return nil
}

// UnmarshalYAML accepts a scalar or a cell object
func (c *Cell) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*c = Cell{}
		if value.Tag != "!!null" {
			c.Text = value.Value
		}
		return nil
	}
	var fields cellFields
	if err := value.Decode(&fields); err != nil {
		return err
	}
	*c = Cell(fields)
	return nil
}

// UnmarshalJSON accepts an array of cells or a row object
func (r *Row) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		*r = Row{}
		return json.Unmarshal(data, &r.Cells)
	}
	var fields rowFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Row(fields)
	return nil
}

// UnmarshalJSON accepts a string, number, boolean, null or a cell object
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Cell{}
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &c.Text)
	case data[0] == '{':
		var fields cellFields
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		*c = Cell(fields)
		return nil
	case data[0] == '[':
		return fmt.Errorf("cell cannot be an array")
	default:
		// numbers and booleans keep their literal spelling
		c.Text = string(data)
		return nil
	}
}

// UnmarshalTOML accepts an array of cells or a row table
func (r *Row) UnmarshalTOML(v interface{}) error {
	*r = Row{}
	switch val := v.(type) {
	case []interface{}:
		r.Cells = make([]Cell, len(val))
		for i, item := range val {
			if err := r.Cells[i].UnmarshalTOML(item); err != nil {
				return fmt.Errorf("cell %d: %w", i, err)
			}
		}
		return nil
	case map[string]interface{}:
		return viaJSON(val, r)
	}
	return fmt.Errorf("row must be an array or a table, got %T", v)
}

// UnmarshalTOML accepts a scalar or a cell table
func (c *Cell) UnmarshalTOML(v interface{}) error {
	*c = Cell{}
	switch val := v.(type) {
	case string:
		c.Text = val
	case int64:
		c.Text = strconv.FormatInt(val, 10)
	case float64:
		c.Text = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		c.Text = strconv.FormatBool(val)
	case map[string]interface{}:
		return viaJSON(val, c)
	default:
		return fmt.Errorf("unsupported cell value %T", v)
	}
	return nil
}

// viaJSON decodes a TOML table through the JSON field mapping, which
// mirrors the TOML one
func viaJSON(table map[string]interface{}, dst interface{}) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
