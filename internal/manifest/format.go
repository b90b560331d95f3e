package manifest

import (
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a package descriptor.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// IsValid reports whether the format is one of the supported encodings.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatTOML:
		return true
	}
	return false
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// FormatForFile guesses the descriptor format from the file extension.
// Unknown extensions fall back to JSON.
func FormatForFile(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}
