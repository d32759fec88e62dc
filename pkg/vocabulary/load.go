package vocabulary

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown vocabulary format")

// Format is the encoding of a vocabulary definition file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf derives the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Decode reads a Definition encoded as format.
func Decode(data []byte, format Format) (Definition, error) {
	var def Definition
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return def, fmt.Errorf("decode json vocabulary: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return def, fmt.Errorf("decode yaml vocabulary: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &def); err != nil {
			return def, fmt.Errorf("decode toml vocabulary: %w", err)
		}
	default:
		return def, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return def, nil
}

// Load decodes and validates a vocabulary.
func Load(data []byte, format Format) (*Schema, error) {
	def, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return NewSchema(def)
}

// LoadFile loads a vocabulary file, picking the decoder from its extension.
func LoadFile(path string) (*Schema, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return Load(data, format)
}

//go:embed schema.json
var schemaJSON []byte

var defaultSchema = sync.OnceValue(func() *Schema {
	s, err := Load(schemaJSON, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded schema.org vocabulary: %v", err))
	}
	return s
})

// Default returns the embedded schema.org vocabulary.
func Default() *Schema {
	return defaultSchema()
}
