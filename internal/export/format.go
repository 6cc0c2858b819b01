package export

import (
	"path/filepath"
	"strings"
)

// Format identifies how a response body is written out.
type Format int

const (
	// FormatRaw prints the body as received instead of writing a file.
	FormatRaw Format = iota
	FormatJSON
	FormatCSV
	FormatYAML
)

var extFormats = map[string]Format{
	".json": FormatJSON,
	".csv":  FormatCSV,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// FormatFor selects the format from the extension of path. Empty paths and
// unknown extensions fall back to FormatRaw.
func FormatFor(path string) Format {
	path = strings.TrimSpace(path)
	if path == "" {
		return FormatRaw
	}
	if f, ok := extFormats[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return FormatRaw
}

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}
