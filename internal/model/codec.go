package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Format is a document serialization used by import and dump.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// DecodeAs parses a document in the given format and validates its shape.
func DecodeAs(data []byte, f Format) (Resume, error) {
	if f != FormatYAML {
		return Decode(data)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Resume{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := ValidateMap(raw); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Resume{}, fmt.Errorf("decode yaml: %w", err)
	}
	return r.Normalize(), nil
}

// EncodeAs serializes a document in the given format.
func EncodeAs(r Resume, f Format) ([]byte, error) {
	if f != FormatYAML {
		return Encode(r)
	}
	b, err := yaml.Marshal(r.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return b, nil
}
