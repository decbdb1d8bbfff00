package parser

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SourceFormat identifies the on-disk format of a parsed document.
type SourceFormat string

const (
	// SourceFormatUnknown means the format could not be determined
	SourceFormatUnknown SourceFormat = ""
	// SourceFormatJSON is a JSON document
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML is a YAML document
	SourceFormatYAML SourceFormat = "yaml"
)

// detectFormatFromPath detects the source format from a file path or URL
func detectFormatFromPath(path string) SourceFormat {
	// Strip any URL query before looking at the extension
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes.
// JSON typically starts with '{' or '[', while YAML does not.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
