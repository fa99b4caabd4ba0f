// Package template loads embed definitions from TOML, YAML and JSON files.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ErikKalkoken/embedkit/internal/embed"
)

var ErrUnknownFormat = errors.New("unknown format")

// Format is the encoding of a template file.
type Format uint

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// FormatFromPath returns the format matching the extension of a file path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads the file at path and returns the embed it defines.
func Load(path string) (*embed.Embed, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	em, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Loaded embed template", "path", path, "format", f)
	return em, nil
}

// Decode returns the embed defined by data.
func Decode(data []byte, f Format) (*embed.Embed, error) {
	attrs, err := Parse(data, f)
	if err != nil {
		return nil, err
	}
	return embed.New(attrs)
}

// Parse decodes data into embed attributes without validating them.
func Parse(data []byte, f Format) (embed.Attrs, error) {
	m := make(map[string]any)
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return embed.Attrs(m), nil
}
