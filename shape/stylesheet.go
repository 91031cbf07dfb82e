package shape

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// StyleSheet stores named style definitions, for instance
//
//	highlight:
//	  fillColor: "#aa9900"
//	  fillOpacity: 0.3
//	  hoverable:
//	    strokeColor: red
type StyleSheet map[string]StyleDef

// LoadStyleSheetYAML decodes a YAML style sheet.
// An empty document gives an empty style sheet.
func LoadStyleSheetYAML(r io.Reader) (StyleSheet, error) {
	sheet := StyleSheet{}
	if err := yaml.NewDecoder(r).Decode(&sheet); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid YAML style sheet: %w", err)
	}
	return sheet, nil
}

// LoadStyleSheetTOML decodes a TOML style sheet, one table per style.
func LoadStyleSheetTOML(r io.Reader) (StyleSheet, error) {
	sheet := StyleSheet{}
	if err := toml.NewDecoder(r).Decode(&sheet); err != nil {
		return nil, fmt.Errorf("invalid TOML style sheet: %w", err)
	}
	return sheet, nil
}

// ReadStyleSheet reads the named file, whose format is
// chosen from its extension (.yaml, .yml or .toml).
func ReadStyleSheet(path string) (StyleSheet, error) {
	var load func(io.Reader) (StyleSheet, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		load = LoadStyleSheetYAML
	case ".toml":
		load = LoadStyleSheetTOML
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return load(f)
}

// Apply applies the style named `name` to the shapes (see ApplyStyle).
func (sheet StyleSheet) Apply(name string, shapes ...Shape) error {
	def, ok := sheet[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownStyle, name)
	}
	return ApplyStyle(def, shapes...)
}

// Validate checks that every style of the sheet can be applied.
func (sheet StyleSheet) Validate() error {
	var errs []error
	for _, name := range sortedKeys(sheet) {
		if _, err := sheet[name].build(&Styled{}); err != nil {
			errs = append(errs, fmt.Errorf("style %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
