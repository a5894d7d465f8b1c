package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a source-model document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatOf picks the encoding from a file extension; anything that is not
// .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Decode parses a project document.
func Decode(data []byte, format Format) (*Project, error) {
	var p Project
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}
	return &p, nil
}

// Encode renders p in the given format. Optional attributes that are unset
// are omitted.
func Encode(p *Project, format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(p)
	default:
		return json.MarshalIndent(p, "", "  ")
	}
}

// LoadFile reads a project from a JSON or YAML file.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	p, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// SaveFile writes p to path in the format implied by its extension.
func SaveFile(p *Project, path string) error {
	data, err := Encode(p, FormatOf(path))
	if err != nil {
		return fmt.Errorf("model: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}
